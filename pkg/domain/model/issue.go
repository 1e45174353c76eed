package model

import "fmt"

// IssueRequest is the JSON body of POST /repos/{owner}/{repo}/issues.
type IssueRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

const protectionIssueTitle = "Repository automatically protected"

const protectionIssueBody = `This repository has been modified to include the following settings:

* Require a pull request before merging
* Require %d approval before merging
* Require review from Code Owners

Refer to [GitHub protected branches](https://docs.github.com/en/repositories/configuring-branches-and-merges-in-your-repository/defining-the-mergeability-of-pull-requests/about-protected-branches) for more information.

Tagging @%s
`

// NewProtectionIssue builds the notification issue summarizing the applied
// policy, tagging the responsible user.
func NewProtectionIssue(policy ProtectionPolicy, notifyUser string) *IssueRequest {
	return &IssueRequest{
		Title: protectionIssueTitle,
		Body:  fmt.Sprintf(protectionIssueBody, policy.RequiredApprovals, notifyUser),
	}
}
