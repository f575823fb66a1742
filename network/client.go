// Package network provides the HTTP client used for release lookups and binary downloads.
package network

import (
	"net/http"
	"time"
)

// Client is shared by every outbound request. The generous timeout leaves room
// for downloading a full yt-dlp build on slow links.
var Client = &http.Client{
	Timeout:   5 * time.Minute,
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 5 * time.Second
	return t
}
