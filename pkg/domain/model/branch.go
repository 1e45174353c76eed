package model

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repoguard/pkg/domain/types"
)

// Branch is a branch entry returned by the GitHub list-branches API. Only the
// name is used; branches are never persisted locally.
type Branch struct {
	Name types.BranchName `json:"name"`
}

// ParseBranches decodes a list-branches response body. A non-array payload
// (e.g. an API error object) is an error.
func ParseBranches(raw json.RawMessage) ([]Branch, error) {
	var branches []Branch
	if err := json.Unmarshal(raw, &branches); err != nil {
		return nil, goerr.Wrap(err, "failed to parse branch list", goerr.V("body", string(raw)))
	}
	return branches, nil
}
