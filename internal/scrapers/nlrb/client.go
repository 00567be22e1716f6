package nlrb

import (
	"context"
	"fmt"
	"time"

	"nlrb-data/internal/components/assert"
	"nlrb-data/internal/components/chrono"
	"nlrb-data/internal/components/telemetry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("nlrb-data/internal/scrapers/nlrb")

// PageDelay is slept after every response the site sends back.
const PageDelay = time.Second

const (
	report_client_fetch             = "client.fetch"
	report_client_page_count        = "client.page-count"
	report_client_fetch_case_list   = "client.fetch-case-list"
	report_client_fetch_case_detail = "client.fetch-case-detail"
)

// Fetcher retrieves a page. Status codes are not interpreted by the Client, any body
// returned is parsed as is.
//
// note: fault injection point
type Fetcher interface {
	Fetch(ctx context.Context, url string) (status int, body []byte, err error)
}

// Client walks the case search one request at a time.
type Client struct {
	fetcher Fetcher
	sleep   chrono.SleepAPI
	delay   time.Duration
	tel     telemetry.API
	parser  parser
}

type Option func(c *Client)

func WithTelemetry(tel telemetry.API) Option {
	return func(c *Client) {
		c.tel = tel
	}
}

func WithSleeper(sleep chrono.SleepAPI) Option {
	return func(c *Client) {
		c.sleep = sleep
	}
}

// WithDelay overrides PageDelay.
func WithDelay(delay time.Duration) Option {
	return func(c *Client) {
		c.delay = delay
	}
}

func NewClient(fetcher Fetcher, opts ...Option) *Client {
	assert.NotNil(fetcher)

	c := &Client{
		fetcher: fetcher,
		sleep:   chrono.NewStandardSleep(),
		delay:   PageDelay,
		tel:     telemetry.NewSlogAPI(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.tel = telemetry.NewScopedAPI("nlrb_scraper", c.tel)
	c.parser = parser{tel: c.tel}
	return c
}

// fetch retrieves a url and then waits out the delay. Transport errors are returned
// as they are.
func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "client:fetch", trace.WithAttributes(
		attribute.String("url", url),
	))
	defer span.End()

	c.tel.ReportDebug(report_client_fetch, url)

	status, body, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		c.tel.ReportBroken(report_client_fetch, err, url)
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("status", status),
		attribute.Int("body_length", len(body)),
	)

	c.sleep.Sleep(c.delay)
	return body, nil
}

// PageCount fetches a list url and reads how many pages the result set has.
func (c *Client) PageCount(ctx context.Context, url string) (int, error) {
	body, err := c.fetch(ctx, url)
	if err != nil {
		return 0, err
	}

	count, err := ParsePageCount(body)
	if err != nil {
		c.tel.ReportBroken(report_client_page_count, err, url)
		return 0, err
	}
	c.tel.ReportCount(report_client_page_count, int64(count))
	return count, nil
}

// FetchCaseList retrieves every search result for the query, pages in ascending
// order and results in page order. Nothing is returned if any page fails.
func (c *Client) FetchCaseList(ctx context.Context, dates *DateRange, organization string) ([]CaseSummary, error) {
	ctx, span := tracer.Start(ctx, "client:FetchCaseList")
	defer span.End()

	query := ListQuery{Dates: dates, Organization: organization}

	pageCount, err := c.PageCount(ctx, ListURL(query))
	if err != nil {
		span.SetStatus(codes.Error, "failed to discover page count")
		return nil, err
	}

	cases := []CaseSummary{}
	for page := 0; page < pageCount; page++ {
		query.Page = page
		pageUrl := ListURL(query)

		body, err := c.fetch(ctx, pageUrl)
		if err != nil {
			span.SetStatus(codes.Error, "failed to fetch page")
			return nil, err
		}
		summaries, err := c.parser.listPage(body)
		if err != nil {
			c.tel.ReportBroken(report_client_fetch_case_list, fmt.Errorf("page %d: %w", page, err), pageUrl)
			span.SetStatus(codes.Error, "failed to parse page")
			return nil, err
		}

		span.AddEvent("page", trace.WithAttributes(
			attribute.Int("page", page),
			attribute.Int("cases", len(summaries)),
		))
		cases = append(cases, summaries...)
	}

	c.tel.ReportCount(report_client_fetch_case_list, int64(len(cases)))
	return cases, nil
}

// FetchCaseDetail retrieves and parses the page of a single case.
func (c *Client) FetchCaseDetail(ctx context.Context, caseId string) (CaseDetail, error) {
	ctx, span := tracer.Start(ctx, "client:FetchCaseDetail", trace.WithAttributes(
		attribute.String("case_id", caseId),
	))
	defer span.End()

	body, err := c.fetch(ctx, CaseURL(caseId))
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch case")
		return CaseDetail{}, err
	}

	detail, err := c.parser.caseDetail(body)
	if err != nil {
		c.tel.ReportBroken(report_client_fetch_case_detail, err, caseId)
		span.SetStatus(codes.Error, "failed to parse case")
		return CaseDetail{}, err
	}
	return detail, nil
}
