package model

import "encoding/json"

// UpgradeRequiredMessage is the response message GitHub returns when branch
// protection is requested on a private repository of a free-tier account.
// Receiving it is tolerated and must not stop processing of other branches.
const UpgradeRequiredMessage = "Upgrade to GitHub Pro or make this repository public to enable this feature."

// ProtectionPolicy is the fixed review policy applied to every branch of a new
// repository. It is a constant of the system, never derived from the event.
type ProtectionPolicy struct {
	EnforceAdmins           bool
	RequiredApprovals       int
	RequireCodeOwnerReviews bool
	DismissStaleReviews     bool
}

func DefaultProtectionPolicy() ProtectionPolicy {
	return ProtectionPolicy{
		EnforceAdmins:           true,
		RequiredApprovals:       1,
		RequireCodeOwnerReviews: true,
		DismissStaleReviews:     false,
	}
}

// BranchProtectionRequest is the policy translated into the JSON schema of
// PUT /repos/{owner}/{repo}/branches/{branch}/protection.
// https://docs.github.com/en/rest/branches/branch-protection
type BranchProtectionRequest struct {
	RequiredStatusChecks       *struct{}               `json:"required_status_checks"`
	EnforceAdmins              bool                    `json:"enforce_admins"`
	RequiredPullRequestReviews PullRequestReviewPolicy `json:"required_pull_request_reviews"`
	Restrictions               *struct{}               `json:"restrictions"`
}

type PullRequestReviewPolicy struct {
	DismissalRestrictions        map[string]any `json:"dismissal_restrictions"`
	DismissStaleReviews          bool           `json:"dismiss_stale_reviews"`
	RequireCodeOwnerReviews      bool           `json:"require_code_owner_reviews"`
	RequiredApprovingReviewCount int            `json:"required_approving_review_count"`
	BypassPullRequestAllowances  map[string]any `json:"bypass_pull_request_allowances"`
}

// ToRequest translates the policy into the GitHub API request body.
// required_status_checks and restrictions are always null: the policy concerns
// review requirements only.
func (x ProtectionPolicy) ToRequest() *BranchProtectionRequest {
	return &BranchProtectionRequest{
		EnforceAdmins: x.EnforceAdmins,
		RequiredPullRequestReviews: PullRequestReviewPolicy{
			DismissalRestrictions:        map[string]any{},
			DismissStaleReviews:          x.DismissStaleReviews,
			RequireCodeOwnerReviews:      x.RequireCodeOwnerReviews,
			RequiredApprovingReviewCount: x.RequiredApprovals,
			BypassPullRequestAllowances:  map[string]any{},
		},
	}
}

// IsUpgradeRequired reports whether a protection response is the known
// plan-tier rejection. Any other response content is not inspected.
func IsUpgradeRequired(raw json.RawMessage) bool {
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return false
	}
	return resp.Message == UpgradeRequiredMessage
}
