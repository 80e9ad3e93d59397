package uploadclient

import (
	"fmt"
	"io"
	"os"
	"time"
)

const progressRenderPeriod = 200 * time.Millisecond

// progressReader печатает однострочный индикатор переданных байт на stderr.
type progressReader struct {
	r       io.Reader
	prefix  string
	total   int64
	current int64
	last    time.Time
}

func newProgressReader(r io.Reader, prefix string, start, total int64) *progressReader {
	return &progressReader{
		r:       r,
		prefix:  prefix,
		total:   total,
		current: start,
	}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.current += int64(n)

	if now := time.Now(); err != nil || now.Sub(p.last) >= progressRenderPeriod {
		p.last = now
		if p.total > 0 {
			pct := int(float64(p.current)/float64(p.total)*100 + 0.5)
			fmt.Fprintf(os.Stderr, "\r%s %3d%% (%d/%d bytes)", p.prefix, pct, p.current, p.total)
		} else {
			fmt.Fprintf(os.Stderr, "\r%s %d bytes", p.prefix, p.current)
		}
		if err == io.EOF {
			fmt.Fprintln(os.Stderr)
		}
	}

	return n, err
}
