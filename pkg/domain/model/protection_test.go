package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/repoguard/pkg/domain/model"
)

func TestProtectionPolicyToRequest(t *testing.T) {
	req := model.DefaultProtectionPolicy().ToRequest()

	data := gt.R1(json.Marshal(req)).NoError(t)

	var decoded map[string]any
	gt.NoError(t, json.Unmarshal(data, &decoded))

	// required_status_checks and restrictions must serialize as explicit nulls
	v, ok := decoded["required_status_checks"]
	gt.True(t, ok)
	gt.Value(t, v).Nil()
	v, ok = decoded["restrictions"]
	gt.True(t, ok)
	gt.Value(t, v).Nil()

	gt.V(t, decoded["enforce_admins"]).Equal(true)

	reviews, ok := decoded["required_pull_request_reviews"].(map[string]any)
	gt.True(t, ok)
	gt.V(t, reviews["dismiss_stale_reviews"]).Equal(false)
	gt.V(t, reviews["require_code_owner_reviews"]).Equal(true)
	gt.V(t, reviews["required_approving_review_count"]).Equal(float64(1))
}

func TestIsUpgradeRequired(t *testing.T) {
	t.Run("matches the documented upgrade message", func(t *testing.T) {
		body := gt.R1(json.Marshal(map[string]string{
			"message": model.UpgradeRequiredMessage,
		})).NoError(t)
		gt.True(t, model.IsUpgradeRequired(body))
	})

	t.Run("other messages are not matched", func(t *testing.T) {
		gt.False(t, model.IsUpgradeRequired([]byte(`{"message":"Not Found"}`)))
	})

	t.Run("successful protection response is not matched", func(t *testing.T) {
		gt.False(t, model.IsUpgradeRequired([]byte(`{"enforce_admins":{"enabled":true}}`)))
	})

	t.Run("non-object payload is not matched", func(t *testing.T) {
		gt.False(t, model.IsUpgradeRequired([]byte(`[]`)))
	})
}

func TestNewProtectionIssue(t *testing.T) {
	issue := model.NewProtectionIssue(model.DefaultProtectionPolicy(), "octocat")

	gt.V(t, issue.Title).Equal("Repository automatically protected")
	gt.S(t, issue.Body).Contains("Require a pull request before merging")
	gt.S(t, issue.Body).Contains("Require 1 approval before merging")
	gt.S(t, issue.Body).Contains("Require review from Code Owners")
	gt.S(t, issue.Body).Contains("Tagging @octocat")
}
