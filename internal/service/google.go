// File: internal/service/google.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// tokenInfoEndpoint 為 Google 憑證驗證端點，測試可覆寫此變數。
var tokenInfoEndpoint = "https://oauth2.googleapis.com/tokeninfo"

var httpClient = http.DefaultClient

// GoogleUserInfo 為 tokeninfo 成功回應中本服務使用的欄位
type GoogleUserInfo struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// VerifyGoogleToken 以原始憑證向 Google tokeninfo 換取使用者屬性
// 非 200 回應一律視為無效憑證
func VerifyGoogleToken(ctx context.Context, credential string) (*GoogleUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		tokenInfoEndpoint+"?id_token="+url.QueryEscape(credential), nil)
	if err != nil {
		return nil, fmt.Errorf("VerifyGoogleToken: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("VerifyGoogleToken: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("VerifyGoogleToken: unexpected status %d", resp.StatusCode)
	}

	var info GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("VerifyGoogleToken: %w", err)
	}
	return &info, nil
}
