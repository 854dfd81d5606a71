package pkg

import (
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strings"
)

var (
	localDockerIpRegex = regexp.MustCompile(`^172\.\d{1,3}\.0\.1:\d{1,5}`)
)

func IPIsLocal(ipAddr string) bool {
	if strings.HasPrefix(ipAddr, "127.0.0.1:") {
		return true
	}
	// request coming from within a docker network
	return localDockerIpRegex.MatchString(ipAddr)
}

// ReadUserIP returns the client IP, preferring proxy headers over the remote addr.
func ReadUserIP(r *http.Request) (string, error) {
	ipAddr := r.Header.Get("X-Real-Ip")
	if ipAddr == "" {
		ipAddr = strings.TrimSpace(strings.Split(r.Header.Get("X-Forwarded-For"), ",")[0])
	}
	if ipAddr == "" {
		ipAddr = r.RemoteAddr
	}

	if IPIsLocal(ipAddr) {
		return "localhost", nil
	}

	host := ipAddr
	if h, _, err := net.SplitHostPort(ipAddr); err == nil {
		host = h
	}

	if ip := net.ParseIP(host); ip == nil {
		return "", fmt.Errorf("ip addr %s is invalid", ipAddr)
	}

	return host, nil
}
