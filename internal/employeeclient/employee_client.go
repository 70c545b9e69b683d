package employeeclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-employee-form/internal/employeeform"
	"go-employee-form/internal/shared/apperror"
	"go-employee-form/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultResource = "Employee"
	DefaultTimeout  = 10 * time.Second

	maxBodyBytes = 1 << 20
)

// Fallback messages used when the backend gives no text of its own.
const (
	MsgFetchFailed  = "Failed to fetch employees"
	MsgSubmitFailed = "Failed to submit form"
	MsgUpdateFailed = "Failed to update employee"
	MsgDeleteFailed = "Failed to delete employee"
	MsgBadResponse  = "Unexpected response from server"
)

type Config struct {
	// BaseURL is the API root, e.g. http://localhost:3000/api.
	BaseURL string
	// Resource is the collection path under BaseURL.
	Resource string
	// DOBField is the wire name of the date of birth.
	DOBField string
	Timeout  time.Duration
}

// Client talks to the employee REST resource. It satisfies
// employeeform.Reader and employeeform.Writer.
type Client struct {
	endpoint string
	codec    Codec
	http     *http.Client
	logger   *zap.Logger
}

var (
	_ employeeform.Reader = (*Client)(nil)
	_ employeeform.Writer = (*Client)(nil)
)

func NewClient(cfg Config, httpClient *http.Client, logger ...*zap.Logger) (*Client, error) {
	l := zap.L().Named("employeeclient")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeeclient")
	}

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid employee api base url %q", cfg.BaseURL)
	}
	resource := strings.Trim(cfg.Resource, "/")
	if resource == "" {
		resource = DefaultResource
	}

	codec, err := NewCodec(cfg.DOBField)
	if err != nil {
		return nil, err
	}

	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		endpoint: base.String() + "/" + resource,
		codec:    codec,
		http:     httpClient,
		logger:   l,
	}, nil
}

func (c *Client) List(ctx context.Context) ([]employeeform.Record, error) {
	body, err := c.do(ctx, http.MethodGet, c.endpoint, nil, MsgFetchFailed)
	if err != nil {
		return nil, err
	}

	records, err := c.codec.DecodeList(body)
	if err != nil {
		c.logger.Error("decode employee list failed", zap.Error(err))
		return nil, apperror.Wrap(err, apperror.CodeInternalError, MsgBadResponse, http.StatusOK)
	}
	return records, nil
}

func (c *Client) Get(ctx context.Context, id string) (employeeform.Record, error) {
	body, err := c.do(ctx, http.MethodGet, c.itemURL(id), nil, MsgFetchFailed)
	if err != nil {
		return employeeform.Record{}, err
	}

	rec, err := c.codec.Decode(body)
	if err != nil {
		return employeeform.Record{}, apperror.Wrap(err, apperror.CodeInternalError, MsgBadResponse, http.StatusOK)
	}
	return rec, nil
}

// Create posts rec without an id. The returned record is the backend's
// echo when it sends one, otherwise rec unchanged.
func (c *Client) Create(ctx context.Context, rec employeeform.Record) (employeeform.Record, error) {
	payload, err := c.codec.Encode(rec, false)
	if err != nil {
		return employeeform.Record{}, apperror.Wrap(err, apperror.CodeInternalError, MsgSubmitFailed, 0)
	}

	body, err := c.do(ctx, http.MethodPost, c.endpoint, payload, MsgSubmitFailed)
	if err != nil {
		return employeeform.Record{}, err
	}
	return c.echo(body, rec), nil
}

// Update puts the whole record to its identity-scoped resource.
func (c *Client) Update(ctx context.Context, rec employeeform.Record) (employeeform.Record, error) {
	if !rec.Persisted() {
		return employeeform.Record{}, apperror.New(apperror.CodeInvalidInput, "Employee has no id", http.StatusBadRequest)
	}
	payload, err := c.codec.Encode(rec, true)
	if err != nil {
		return employeeform.Record{}, apperror.Wrap(err, apperror.CodeInternalError, MsgUpdateFailed, 0)
	}

	body, err := c.do(ctx, http.MethodPut, c.itemURL(rec.ID), payload, MsgUpdateFailed)
	if err != nil {
		return employeeform.Record{}, err
	}
	return c.echo(body, rec), nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, c.itemURL(id), nil, MsgDeleteFailed)
	return err
}

func (c *Client) itemURL(id string) string {
	return c.endpoint + "/" + url.PathEscape(id)
}

func (c *Client) echo(body []byte, sent employeeform.Record) employeeform.Record {
	if len(bytes.TrimSpace(body)) == 0 {
		return sent
	}
	rec, err := c.codec.Decode(body)
	if err != nil || !rec.Persisted() {
		return sent
	}
	return rec
}

// do performs one request. Transport failures and non-2xx answers come
// back as NETWORK_ERROR AppErrors whose message is the server's text when
// present and fallback otherwise.
func (c *Client) do(ctx context.Context, method, target string, payload []byte, fallback string) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, fallback, 0)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rid := contextutil.GetRequestID(ctx)
	if rid == "" {
		rid = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", rid)

	log := contextutil.GetLogger(ctx, c.logger).With(
		zap.String("request_id", rid),
		zap.String("method", method),
		zap.String("url", target),
	)
	log.Debug("employee api request")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("employee api unreachable", zap.Error(err))
		return nil, apperror.Wrap(err, apperror.CodeNetworkError, fallback, 0)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Warn("employee api body read failed", zap.Error(err))
		return nil, apperror.Wrap(err, apperror.CodeNetworkError, fallback, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := ExtractMessage(body)
		if msg == "" {
			msg = fallback
		}
		log.Warn("employee api request failed",
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg),
		)
		return nil, apperror.Wrap(
			fmt.Errorf("%s %s: status %d", method, target, resp.StatusCode),
			apperror.CodeNetworkError,
			msg,
			resp.StatusCode,
		)
	}

	log.Debug("employee api response", zap.Int("status", resp.StatusCode))
	return body, nil
}
