package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Notice is one store announcement shown as a page-load notification.
type Notice struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Descrip   *string `json:"descrip,omitempty"`
	StoreID   int64   `json:"storeId"`
	CreatedAt string  `json:"createdAt"`
}

type noticeList struct {
	Announcements []Notice `json:"announcements"`
}

// NoticeClient fetches the announcement listing from the application backend.
// This is the only backend handler the interaction machines touch, polled
// once on page load.
type NoticeClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewNoticeClient(baseURL string) *NoticeClient {
	return &NoticeClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// StoreNotices returns the announcements for one store, newest first as
// served by the backend.
func (nc *NoticeClient) StoreNotices(ctx context.Context, storeID int64) ([]Notice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, nc.BaseURL+"/api/manager/announcement", nil)
	if err != nil {
		return nil, err
	}

	resp, err := nc.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("announcement fetch failed with status %d", resp.StatusCode)
	}

	var list noticeList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, err
	}

	var notices []Notice
	for _, notice := range list.Announcements {
		if notice.StoreID == storeID {
			notices = append(notices, notice)
		}
	}
	return notices, nil
}
