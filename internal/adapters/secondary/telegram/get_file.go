package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// GetFileResult информация о файле на серверах Telegram
type GetFileResult struct {
	FileID   string `json:"file_id"`
	FileSize int64  `json:"file_size"`
	FilePath string `json:"file_path"`
}

// GetFileResponse ответ от Telegram API на getFile
type GetFileResponse struct {
	APIResponse
	Result GetFileResult `json:"result"`
}

// DownloadFile скачивает файл с серверов Telegram по file_id
// Сначала getFile отдаёт путь, затем файл забирается отдельным запросом
func (c *Client) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	reqBody := struct {
		FileID string `json:"file_id"`
	}{
		FileID: fileID,
	}

	var apiResp GetFileResponse
	if err := c.postJSON(ctx, "/getFile", reqBody, &apiResp); err != nil {
		return nil, err
	}

	if !apiResp.OK {
		return nil, fmt.Errorf("telegram API error: %s (code: %d)", apiResp.Description, apiResp.ErrorCode)
	}

	if apiResp.Result.FilePath == "" {
		return nil, fmt.Errorf("telegram returned empty file path for file_id %s", fileID)
	}

	fileURL := c.fileBaseURL + "/" + apiResp.Result.FilePath

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d while downloading file", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file body: %w", err)
	}

	c.log.Debug("file downloaded",
		"file_id", fileID,
		"size", len(data),
	)

	return data, nil
}
