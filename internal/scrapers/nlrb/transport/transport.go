// Package transport is the http side of the nlrb scraper, it implements nlrb.Fetcher
// on top of resty.
package transport

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"time"

	"nlrb-data/internal/components/assert"
	"nlrb-data/internal/components/telemetry"
	"nlrb-data/internal/scrapers/nlrb"
	"nlrb-data/pkg/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const report_transport_fetch = "transport.fetch"

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type Options struct {
	UserAgent string
	// Timeout bounds a single request, 0 means 30 seconds.
	Timeout time.Duration
	// DisableCloudflareBypass leaves the default transport alone.
	DisableCloudflareBypass bool
	// AllowedHost restricts redirects to a single host, it defaults to the host
	// of nlrb.BaseHost.
	AllowedHost string
	// DumpDir, when set, receives a text file per response received.
	DumpDir string
}

// RestyFetcher fetches pages with a cookie-keeping resty client.
type RestyFetcher struct {
	http *resty.Client
	tel  telemetry.API
}

var _ nlrb.Fetcher = (*RestyFetcher)(nil)

func New(opts Options, tel telemetry.API) (*RestyFetcher, error) {
	assert.NotNil(tel)

	allowedHost := opts.AllowedHost
	if allowedHost == "" {
		parsed, err := url.Parse(nlrb.BaseHost)
		if err != nil {
			return nil, err
		}
		allowedHost = parsed.Hostname()
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	if !opts.DisableCloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	client.SetHeader("user-agent", userAgent)
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(allowedHost))
	client.SetTimeout(timeout)

	if opts.DumpDir != "" {
		output, err := restyutil.NewFilesystemOutput(opts.DumpDir)
		if err != nil {
			return nil, err
		}
		restyutil.Dump(client, output)
	}

	return NewWithClient(client, tel), nil
}

// NewWithClient wraps an already configured resty client.
func NewWithClient(client *resty.Client, tel telemetry.API) *RestyFetcher {
	assert.NotNil(client)
	assert.NotNil(tel)

	tel = telemetry.NewScopedAPI("nlrb_transport", tel)
	telemetry.InstrumentResty(client, tel)

	return &RestyFetcher{
		http: client,
		tel:  tel,
	}
}

// Fetch issues a GET. A non-2xx response is not an error, the body is handed back
// regardless and the status is reported.
func (f *RestyFetcher) Fetch(ctx context.Context, url string) (int, []byte, error) {
	res, err := f.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return 0, nil, err
	}
	if res.IsError() {
		f.tel.ReportWarning(
			report_transport_fetch,
			fmt.Errorf("unexpected status: %s", res.Status()),
			url,
		)
	}
	return res.StatusCode(), res.Body(), nil
}
