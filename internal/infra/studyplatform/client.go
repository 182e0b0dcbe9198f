package studyplatform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
	"github.com/KasumiMercury/primind-burst-notification/internal/observability/logging"
	"github.com/KasumiMercury/primind-burst-notification/internal/observability/tracing"
)

const (
	apiKeyHeader = "X-Api-Key"
	dateLayout   = "2006-01-02"
)

// Client talks to the study platform's v3 REST API. It serves as the
// population, participant and report source for the notification worker.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: newHTTPClient(baseURL, timeout),
	}
}

func (c *Client) AllAccountSummaries(studyID string) domain.AccountSummaryIterator {
	return newAccountSummaryIterator(c, studyID)
}

func (c *Client) GetParticipant(ctx context.Context, studyID, userID string) (*domain.Participant, error) {
	var p domain.Participant
	path := fmt.Sprintf("/v3/studies/%s/participants/%s", url.PathEscape(studyID), url.PathEscape(userID))
	if err := c.do(ctx, "get_participant", http.MethodGet, path, nil, nil, &p); err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, err
	}
	if p.ID == "" {
		p.ID = userID
	}
	return &p, nil
}

func (c *Client) GetActivityEvents(ctx context.Context, studyID, userID string) ([]domain.ActivityEvent, error) {
	var list activityEventList
	path := fmt.Sprintf("/v3/studies/%s/participants/%s/activityEvents", url.PathEscape(studyID), url.PathEscape(userID))
	if err := c.do(ctx, "get_activity_events", http.MethodGet, path, nil, nil, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (c *Client) GetTaskHistory(ctx context.Context, studyID, userID, taskID string, start, end time.Time) domain.ScheduledActivityIterator {
	return newScheduledActivityIterator(c, studyID, userID, taskID, start, end)
}

func (c *Client) GetParticipantReports(ctx context.Context, studyID, userID, reportID string, startDate, endDate time.Time) ([]domain.ReportData, error) {
	var list reportList
	path := fmt.Sprintf("/v3/studies/%s/participants/%s/reports/%s",
		url.PathEscape(studyID), url.PathEscape(userID), url.PathEscape(reportID))
	q := url.Values{}
	q.Set("startDate", startDate.Format(dateLayout))
	q.Set("endDate", endDate.Format(dateLayout))
	if err := c.do(ctx, "get_participant_reports", http.MethodGet, path, q, nil, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}

// SendSMSToParticipant asks the platform to text the participant's verified
// phone number.
func (c *Client) SendSMSToParticipant(ctx context.Context, studyID, userID, message string) error {
	path := fmt.Sprintf("/v3/studies/%s/participants/%s/sms", url.PathEscape(studyID), url.PathEscape(userID))
	return c.do(ctx, "send_sms", http.MethodPost, path, nil, smsRequest{Message: message}, nil)
}

func (c *Client) fetchAccountSummaries(ctx context.Context, studyID string, offset int) (*accountSummaryPage, error) {
	var page accountSummaryPage
	path := fmt.Sprintf("/v3/studies/%s/participants", url.PathEscape(studyID))
	q := url.Values{}
	q.Set("offsetBy", strconv.Itoa(offset))
	q.Set("pageSize", strconv.Itoa(PageSize))
	if err := c.do(ctx, "get_account_summaries", http.MethodGet, path, q, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) fetchTaskHistory(ctx context.Context, studyID, userID, taskID string, start, end time.Time, offsetKey string) (*scheduledActivityPage, error) {
	var page scheduledActivityPage
	path := fmt.Sprintf("/v3/studies/%s/participants/%s/activities/%s",
		url.PathEscape(studyID), url.PathEscape(userID), url.PathEscape(taskID))
	q := url.Values{}
	q.Set("scheduledOnStart", start.Format(time.RFC3339))
	q.Set("scheduledOnEnd", end.Format(time.RFC3339))
	q.Set("pageSize", strconv.Itoa(PageSize))
	if offsetKey != "" {
		q.Set("offsetKey", offsetKey)
	}
	if err := c.do(ctx, "get_task_history", http.MethodGet, path, q, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, in, out any) (err error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	ctx, span := tracing.StartExternalAPISpan(ctx, operation, u.String())
	defer func() {
		tracing.RecordError(span, err)
		span.End()
	}()

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	slog.DebugContext(ctx, "calling study platform",
		slog.String("operation", operation),
		slog.String("url", u.String()),
	)

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}
	requestID := logging.ValidateAndExtractRequestID(logging.RequestIDFromContext(ctx))
	req.Header.Set("x-request-id", requestID)
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send request to study platform",
			slog.String("operation", operation),
			slog.String("url", u.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode != http.StatusNotFound {
			slog.ErrorContext(ctx, "unexpected status code from study platform",
				slog.String("operation", operation),
				slog.String("url", u.String()),
				slog.Int("status_code", resp.StatusCode),
			)
		}
		return &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
	}

	if out == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		slog.ErrorContext(ctx, "failed to decode response from study platform",
			slog.String("operation", operation),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
