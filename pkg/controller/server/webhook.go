package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repoguard/pkg/domain/interfaces"
	"github.com/secmon-lab/repoguard/pkg/domain/model"
	"github.com/secmon-lab/repoguard/pkg/domain/types"
	"github.com/secmon-lab/repoguard/pkg/utils/errutil"
	"github.com/secmon-lab/repoguard/pkg/utils/logging"
)

// handleRepositoryWebhook runs the full event pipeline synchronously: decode
// the transport encoding, authenticate the signature, parse the payload, and
// hand it to the use case. The response is written only after the pipeline
// finishes.
func handleRepositoryWebhook(uc interfaces.UseCase, secret types.WebhookSecret, w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		errutil.HandleError(ctx, "fail to read webhook body", goerr.Wrap(err, "reading request body"))
		safeWrite(w, http.StatusBadRequest, []byte(`"Bad Request"`))
		return
	}

	body, err := decodeTransportEncoding(r.Header.Get("Content-Transfer-Encoding"), raw)
	if err != nil {
		errutil.HandleError(ctx, "fail to decode webhook body", err)
		safeWrite(w, http.StatusBadRequest, []byte(`"Bad Request"`))
		return
	}

	if !verifySignature(secret, body, r.Header.Get(signatureHeader)) {
		logging.From(ctx).Warn("webhook signature mismatch")
		respondDenied(w)
		return
	}

	event, err := parseRepositoryEvent(body)
	if err != nil {
		errutil.HandleError(ctx, "fail to parse repository event", err)
		safeWrite(w, http.StatusBadRequest, []byte(`"Bad Request"`))
		return
	}

	logging.From(ctx).Info("received repository event",
		slog.String("action", event.Action),
		slog.Any("repo", event.Repo.FullName),
		slog.String("org", event.OrgLogin),
		slog.String("git_url", event.Repo.GitURL),
		slog.String("clone_url", event.Repo.CloneURL),
	)

	if err := uc.HandleRepositoryEvent(ctx, event); err != nil {
		errutil.HandleError(ctx, "fail to handle repository event", err)
		safeWrite(w, http.StatusInternalServerError, []byte(`"Internal Server Error"`))
		return
	}

	respondOK(w)
}

// decodeTransportEncoding undoes an optional base64 transport encoding before
// signature verification. A body explicitly declared base64 must decode; a
// body that does not look like JSON is decoded opportunistically, matching
// gateways that re-encode the payload without setting a header.
func decodeTransportEncoding(encoding string, raw []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(raw)

	if strings.EqualFold(encoding, "base64") {
		decoded, err := base64.StdEncoding.DecodeString(string(trimmed))
		if err != nil {
			return nil, goerr.Wrap(err, "body declared base64 but does not decode")
		}
		return decoded, nil
	}

	if len(trimmed) > 0 && trimmed[0] != '{' {
		if decoded, err := base64.StdEncoding.DecodeString(string(trimmed)); err == nil {
			return decoded, nil
		}
	}

	return raw, nil
}

func parseRepositoryEvent(body []byte) (*model.RepositoryEvent, error) {
	var ev github.RepositoryEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal repository event")
	}

	event := &model.RepositoryEvent{
		Action: ev.GetAction(),
		Repo: model.EventRepository{
			Name:     types.RepoName(ev.GetRepo().GetName()),
			FullName: types.RepoFullName(ev.GetRepo().GetFullName()),
			GitURL:   ev.GetRepo().GetGitURL(),
			CloneURL: ev.GetRepo().GetCloneURL(),
		},
		OrgLogin: ev.GetOrg().GetLogin(),
	}

	if err := event.Validate(); err != nil {
		return nil, err
	}

	return event, nil
}
