package checkicingarest

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
)

func (opts *toolOptions) httpClient() *http.Client {
	timeout := time.Duration(opts.Timeout) * time.Second
	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: opts.Insecure,
				MinVersion:         tls.VersionTLS12,
			},
			Dial: (&net.Dialer{
				Timeout: timeout,
			}).Dial,
			ResponseHeaderTimeout: timeout,
			TLSHandshakeTimeout:   timeout,
			IdleConnTimeout:       timeout,
		},
	}

	return client
}

// execute sends the encoded invocation to the daemon and interprets the
// response. There is exactly one request per run, no retries.
func (opts *toolOptions) execute(ctx context.Context, inv Invocation) (*CheckResult, error) {
	body, err := json.Marshal(inv)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %s", err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(opts.Timeout)*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, opts.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{fmt.Errorf("building request: %s", err.Error())}
	}
	req.Header.Set("Content-Type", "application/json")

	log.Debugf("http POST %s", opts.endpoint)
	log.Tracef("request body: %s", string(body))

	resp, err := opts.httpClient().Do(req)
	if err != nil {
		return nil, &TransportError{fmt.Errorf("http request failed %s: %s", opts.endpoint, err.Error())}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{fmt.Errorf("reading response failed: %s", err.Error())}
	}

	log.Tracef("response %s: %s", resp.Status, string(respBody))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &TransportError{fmt.Errorf("http request failed %s: %s", opts.endpoint, resp.Status)}
	}

	return decodeResponse(inv.Command, respBody)
}
