package jobs

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const (
	defaultSearchURL = "https://wflow.intellects.tech/webhook/get_jobs"
	userAgent        = "intellects/aiready"
	contentEncoding  = "gzip, deflate, br"
)

// SearchParams holds the query parameters sent to the job search webhook.
// The search text is lowercased before sending; the collaborator performs
// the actual matching.
type SearchParams struct {
	Search   string `jobparam:"search"`
	Location string `jobparam:"location"`
}

type Client struct {
	ctx        context.Context
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	SearchURL  string
}

func New(ctx context.Context, logger *zap.Logger) *Client {
	return &Client{
		ctx:    ctx,
		logger: logger,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		UserAgent: userAgent,
		SearchURL: defaultSearchURL,
	}
}

// Search queries the webhook and decodes the returned records. Records may
// arrive wrapped in a "json" field depending on the workflow version; both
// shapes are accepted.
func (c *Client) Search(params *SearchParams) (*Listings, error) {
	q := buildParams(params)

	items, err := c.getItems(c.SearchURL, q)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	var listings []*Listing
	cfg := &mapstructure.DecoderConfig{
		Result:  &listings,
		TagName: "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(unwrapItems(items)); err != nil {
		return nil, fmt.Errorf("decode listings: %w", err)
	}

	return &Listings{Items: listings}, nil
}

// buildParams turns SearchParams into query values using the jobparam
// struct tags. Empty values are omitted.
func buildParams(params *SearchParams) url.Values {
	q := url.Values{}
	fields := reflect.VisibleFields(reflect.TypeOf(*params))
	for _, field := range fields {
		key := field.Tag.Get("jobparam")
		if key == "" {
			continue
		}
		value := fmt.Sprintf("%v", reflect.ValueOf(params).Elem().Field(field.Index[0]).Interface())
		if value != "" {
			q.Set(key, strings.ToLower(value))
		}
	}
	return q
}

// unwrapItems lifts records out of their "json" envelope when present.
func unwrapItems(items []map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if wrapped, ok := item["json"].(map[string]any); ok {
			out = append(out, wrapped)
			continue
		}
		out = append(out, item)
	}
	return out
}

func (c *Client) getItems(rawURL string, q url.Values) ([]map[string]any, error) {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept-Encoding", contentEncoding)
	req.URL.RawQuery = q.Encode()

	c.logger.Debug("make request", zap.String("url", req.URL.String()))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzipReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gzipReader.Close()
		reader = gzipReader
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	var items []map[string]any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("expected an array of jobs: %w", err)
	}

	return items, nil
}
