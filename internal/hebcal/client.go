package hebcal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// HebrewDate is a date in the Hebrew calendar. Month is the Hebcal month
// name (e.g. "Sivan", "Adar II"), which disambiguates leap months without
// any local calendar math.
type HebrewDate struct {
	Year  int
	Month string
	Day   int
}

func (d HebrewDate) String() string {
	return fmt.Sprintf("%d %s %d", d.Day, d.Month, d.Year)
}

// Converter converts between Gregorian and Hebrew dates. Implementations
// must be idempotent and side-effect-free; the resolver treats every
// conversion as a pure lookup.
type Converter interface {
	GregorianToHebrew(ctx context.Context, t time.Time) (HebrewDate, error)
	HebrewToGregorian(ctx context.Context, d HebrewDate) (time.Time, error)
}

// hebcalClient implements Converter against the Hebcal converter API.
type hebcalClient struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a Converter backed by the Hebcal HTTP API.
func NewClient(cfg Config) Converter {
	return &hebcalClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// converterResponse is the JSON body returned by GET /converter?cfg=json.
type converterResponse struct {
	GY int    `json:"gy"`
	GM int    `json:"gm"`
	GD int    `json:"gd"`
	HY int    `json:"hy"`
	HM string `json:"hm"`
	HD int    `json:"hd"`
}

func (c *hebcalClient) GregorianToHebrew(ctx context.Context, t time.Time) (HebrewDate, error) {
	q := url.Values{}
	q.Set("cfg", "json")
	q.Set("date", t.Format("2006-01-02"))
	q.Set("g2h", "1")

	resp, err := c.doRequest(ctx, q)
	if err != nil {
		return HebrewDate{}, err
	}
	if resp.HY == 0 || resp.HM == "" || resp.HD == 0 {
		return HebrewDate{}, fmt.Errorf("%w: missing hebrew date fields", ErrBadResponse)
	}
	return HebrewDate{Year: resp.HY, Month: resp.HM, Day: resp.HD}, nil
}

func (c *hebcalClient) HebrewToGregorian(ctx context.Context, d HebrewDate) (time.Time, error) {
	q := url.Values{}
	q.Set("cfg", "json")
	q.Set("hy", strconv.Itoa(d.Year))
	q.Set("hm", d.Month)
	q.Set("hd", strconv.Itoa(d.Day))
	q.Set("h2g", "1")

	resp, err := c.doRequest(ctx, q)
	if err != nil {
		return time.Time{}, err
	}
	if resp.GY == 0 || resp.GM < 1 || resp.GM > 12 || resp.GD == 0 {
		return time.Time{}, fmt.Errorf("%w: missing gregorian date fields", ErrBadResponse)
	}
	return time.Date(resp.GY, time.Month(resp.GM), resp.GD, 0, 0, 0, 0, time.UTC), nil
}

func (c *hebcalClient) doRequest(ctx context.Context, q url.Values) (*converterResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	reqURL := c.cfg.Endpoint + "/converter?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpResp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		if isConnectionError(err) {
			return nil, ErrUnavailable
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrBadResponse, httpResp.StatusCode, string(body))
	}

	var resp converterResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return &resp, nil
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
