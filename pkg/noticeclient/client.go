// Package noticeclient talks to the /notices REST resource over fasthttp.
package noticeclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/iyouport-org/noticeboard/pkg/webapi"
	log "github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

// ErrRequestFailed covers every failure: the request could not be made,
// or the server answered outside 2xx.
var ErrRequestFailed = errors.New("notice request failed")

type Client struct {
	base    string
	http    *fasthttp.Client
	timeout time.Duration
}

type Option func(*Client)

// WithDial routes every connection through dial, e.g. an in-memory socket.
func WithDial(dial fasthttp.DialFunc) Option {
	return func(c *Client) {
		c.http.Dial = dial
	}
}

// WithTimeout bounds each request. Zero waits indefinitely.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// New returns a client for the collection at base, e.g.
// http://localhost:8081/notices.
func New(base *url.URL, opts ...Option) *Client {
	c := &Client{
		base: base.String(),
		http: &fasthttp.Client{
			Name: "noticeboard",
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) List(ctx context.Context) ([]webapi.Notice, error) {
	var notices []webapi.Notice
	if err := c.do(ctx, fasthttp.MethodGet, c.base, nil, &notices); err != nil {
		return nil, err
	}
	return notices, nil
}

func (c *Client) Get(ctx context.Context, id uint) (webapi.Notice, error) {
	var notice webapi.Notice
	err := c.do(ctx, fasthttp.MethodGet, c.item(id), nil, &notice)
	return notice, err
}

func (c *Client) Create(ctx context.Context, req webapi.NoticeRequest) (webapi.Notice, error) {
	var notice webapi.Notice
	err := c.do(ctx, fasthttp.MethodPost, c.base, req, &notice)
	return notice, err
}

func (c *Client) Update(ctx context.Context, id uint, req webapi.NoticeRequest) (webapi.Notice, error) {
	var notice webapi.Notice
	err := c.do(ctx, fasthttp.MethodPut, c.item(id), req, &notice)
	return notice, err
}

func (c *Client) Delete(ctx context.Context, id uint) error {
	return c.do(ctx, fasthttp.MethodDelete, c.item(id), nil, nil)
}

func (c *Client) item(id uint) string {
	return c.base + "/" + strconv.FormatUint(uint64(id), 10)
}

func (c *Client) do(ctx context.Context, method, uri string, in interface{}, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrRequestFailed, method, uri, err)
	}
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: %s %s: %v", ErrRequestFailed, method, uri, err)
		}
		req.Header.SetContentType("application/json")
		req.SetBody(body)
	}

	var err error
	if c.timeout > 0 {
		err = c.http.DoTimeout(req, resp, c.timeout)
	} else {
		err = c.http.Do(req, resp)
	}
	if err != nil {
		if errors.Is(err, fasthttp.ErrTimeout) {
			log.WithFields(log.Fields{"method": method, "uri": uri}).Warn("request timed out")
		}
		return fmt.Errorf("%w: %s %s: %v", ErrRequestFailed, method, uri, err)
	}
	status := resp.StatusCode()
	log.WithFields(log.Fields{
		"method": method,
		"uri":    uri,
		"status": status,
	}).Trace("notice request")
	if status < 200 || status >= 300 {
		return fmt.Errorf("%w: %s %s: unexpected status %d", ErrRequestFailed, method, uri, status)
	}
	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrRequestFailed, method, uri, err)
	}
	return nil
}
