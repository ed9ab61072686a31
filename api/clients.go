package api

import (
	"net"
	"net/http"
	"os"
	"time"

	"draftshare-cli/types"
)

const dialTimeout = 10 * time.Second
const fastReqTimeout = 30 * time.Second

// Image uploads plus backend-side generation can take a while.
const uploadReqTimeout = 5 * time.Minute

type Api struct{}

var Client types.ApiClient = (*Api)(nil)

const defaultApiHost = "http://localhost:3000"

func getApiHost() string {
	if host := os.Getenv("DRAFTSHARE_API_HOST"); host != "" {
		return host
	}
	return defaultApiHost
}

func GetApiHost() string {
	return getApiHost()
}

var netDialer = &net.Dialer{
	Timeout: dialTimeout,
}

var defaultClient = &http.Client{
	Transport: &http.Transport{
		Dial: netDialer.Dial,
	},
	Timeout: fastReqTimeout,
}

var uploadClient = &http.Client{
	Transport: &http.Transport{
		Dial: netDialer.Dial,
	},
	Timeout: uploadReqTimeout,
}
