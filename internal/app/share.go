package app

import "net/url"

// ShareLink строит t.me-ссылку "поделиться": открывает диалог пересылки
// сообщения "@<bot> egg" со ссылкой на бота.
func ShareLink(botUsername string) string {
	q := url.Values{}
	q.Set("url", "https://t.me/"+botUsername)
	q.Set("text", "@"+botUsername+" egg")
	return "https://t.me/share/url?" + q.Encode()
}
