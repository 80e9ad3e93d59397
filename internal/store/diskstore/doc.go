// Package diskstore реализует дисковый движок докачиваемых загрузок: один каталог,
// в котором на каждую загрузку приходится файл данных (имя — id) и пять маленьких
// сайдкар-записей `{id}.uploadlength`, `{id}.metadata`, `{id}.expiration`,
// `{id}.chunkstart`, `{id}.chunkcomplete`. Движок не сериализует конкурентные
// дозаписи одного id — это обязанность протокольного слоя.
package diskstore
