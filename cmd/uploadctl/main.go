package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/sir_venger/upload_lite/pkg/uploadclient"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "upload service base URL")
	metadata := flag.String("metadata", "", "opaque metadata attached to the upload")
	flag.Parse()

	path := flag.Arg(0)
	if path == "" {
		log.Fatal("usage: uploadctl [flags] <file>")
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli := uploadclient.New()
	cli.Verbose = true

	url, err := cli.Upload(ctx, *server, f, st.Size(), *metadata)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(url)
}
