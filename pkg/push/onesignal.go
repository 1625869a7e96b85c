package push

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const notificationsEndpoint = "https://onesignal.com/api/v1/notifications"

type PushService struct {
	appID   string
	apiKey  string
	baseURL string
	client  *http.Client
}

// OneSignal API cevabı
type pushResponse struct {
	ID     string `json:"id"`
	Errors any    `json:"errors"`
}

func NewPushService(appID, apiKey string) *PushService {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	return &PushService{
		appID:   appID,
		apiKey:  apiKey,
		baseURL: notificationsEndpoint,
		client:  client,
	}
}

// Send verilen cihaz tokenlarına bildirim gönderir, provider'ın bildirim
// id'sini döner
func (s *PushService) Send(title, body string, deviceTokens []string) (string, error) {
	if len(deviceTokens) == 0 {
		return "", fmt.Errorf("no device tokens to send to")
	}

	payload := map[string]interface{}{
		"app_id":             s.appID,
		"include_player_ids": deviceTokens,
		"headings":           map[string]string{"en": title},
		"contents":           map[string]string{"en": body},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("push provider returned %d: %s", resp.StatusCode, string(respBody))
	}

	var result pushResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}
	if result.Errors != nil {
		return "", fmt.Errorf("push provider errors: %v", result.Errors)
	}

	return result.ID, nil
}
