package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"

	shared "draftshare-cli/shared"
)

func (a *Api) CreateDraftFromImage(imagePath, mimeType string, targetSns shared.TargetSns) (*shared.Draft, *shared.ApiError) {
	serverUrl := getApiHost() + "/api/drafts"

	file, err := os.Open(imagePath)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error opening image: %v", err)}
	}
	defer file.Close()

	filename := filepath.Base(imagePath)
	if filename == "." || filename == string(filepath.Separator) {
		filename = "image.jpg"
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	header.Set("Content-Type", mimeType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error building request: %v", err)}
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error reading image: %v", err)}
	}

	if err := writer.WriteField("sourceType", string(shared.SourceTypeImage)); err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error building request: %v", err)}
	}
	if err := writer.WriteField("targetSns", string(targetSns)); err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error building request: %v", err)}
	}
	if err := writer.Close(); err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error building request: %v", err)}
	}

	resp, err := uploadClient.Post(serverUrl, writer.FormDataContentType(), body)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var respBody shared.DraftResponse
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return respBody.Draft, nil
}

func (a *Api) CreateDraftFromText(sourceText string, targetSns shared.TargetSns) (*shared.Draft, *shared.ApiError) {
	req := shared.CreateDraftFromTextRequest{
		SourceType: shared.SourceTypeText,
		SourceText: sourceText,
		TargetSns:  targetSns,
	}
	return a.postDraft(req)
}

func (a *Api) CreateDraftFromUrl(sourceUrl string, targetSns shared.TargetSns) (*shared.Draft, *shared.ApiError) {
	req := shared.CreateDraftFromUrlRequest{
		SourceType: shared.SourceTypeUrl,
		SourceUrl:  sourceUrl,
		TargetSns:  targetSns,
	}
	return a.postDraft(req)
}

func (a *Api) postDraft(req interface{}) (*shared.Draft, *shared.ApiError) {
	serverUrl := getApiHost() + "/api/drafts"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := defaultClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var respBody shared.DraftResponse
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return respBody.Draft, nil
}

func (a *Api) GetDrafts() ([]*shared.Draft, *shared.ApiError) {
	serverUrl := getApiHost() + "/api/drafts"

	resp, err := defaultClient.Get(serverUrl)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var respBody shared.ListDraftsResponse
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return respBody.Drafts, nil
}

func (a *Api) UpdateDraft(draftId, content string) (*shared.Draft, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/api/drafts/%s", getApiHost(), draftId)

	reqBytes, err := json.Marshal(shared.UpdateDraftRequest{Content: content})
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	request, err := http.NewRequest(http.MethodPatch, serverUrl, bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := defaultClient.Do(request)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var respBody shared.DraftResponse
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return respBody.Draft, nil
}

func (a *Api) DeleteDraft(draftId string) *shared.ApiError {
	serverUrl := fmt.Sprintf("%s/api/drafts/%s", getApiHost(), draftId)

	request, err := http.NewRequest(http.MethodDelete, serverUrl, nil)
	if err != nil {
		return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}

	resp, err := defaultClient.Do(request)
	if err != nil {
		return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return HandleApiError(resp, errorBody)
	}

	return nil
}
