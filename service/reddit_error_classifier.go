package service

import (
	"errors"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	"discussion-fetcher/domain"
	"discussion-fetcher/driver/reddit_api"
	apperrors "discussion-fetcher/utils/errors"
)

const networkSecurityBlock = "blocked by network security"

// classifyRedditError wraps err with the retry verdict for forum API failures.
func classifyRedditError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.NewOperationError("reddit submission load", err, isRetryableRedditError(err))
}

func isRetryableRedditError(err error) bool {
	if errors.Is(err, domain.ErrRedditClientNotConfigured) || errors.Is(err, domain.ErrSubmissionNotFound) {
		return false
	}

	var apiErr *reddit_api.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.RateLimited():
			return true
		case apiErr.Forbidden(), apiErr.NotFound(), apiErr.BadRequest(), apiErr.Unauthorized():
			return false
		}
		return retryableStatus(apiErr.StatusCode)
	}

	// token endpoint failures
	var tokenErr *oauth2.RetrieveError
	if errors.As(err, &tokenErr) {
		if tokenErr.ErrorCode != "" {
			return false
		}
		if tokenErr.Response != nil {
			switch tokenErr.Response.StatusCode {
			case http.StatusUnauthorized, http.StatusForbidden:
				return false
			}
			return retryableStatus(tokenErr.Response.StatusCode)
		}
	}

	if status, ok := apperrors.StatusCode(err); ok {
		return retryableStatus(status)
	}

	if strings.Contains(strings.ToLower(err.Error()), networkSecurityBlock) {
		return false
	}
	return true
}

// retryableStatus: 429 and 5xx are worth another attempt; any other code is not.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}
