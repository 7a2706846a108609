package news

import (
	"errors"
	"io"
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/handler/http/schema"
)

const invalidIDMessage = "Id is not valid."

// pathID parses the {id} segment. On failure it answers 400 and returns false.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Text(w, http.StatusBadRequest, invalidIDMessage)
		return 0, false
	}
	return id, true
}

// payload returns the body validated by the schema middleware, decoding it
// here when the handler is mounted without the middleware.
func payload(w http.ResponseWriter, r *http.Request) (*schema.NewsPayload, bool) {
	if p, ok := schema.FromContext[schema.NewsPayload](r.Context()); ok {
		return p, true
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("could not read request body"))
		return nil, false
	}
	var p schema.NewsPayload
	if err := schema.Decode(body, &p); err != nil {
		respond.Error(w, http.StatusUnprocessableEntity, err)
		return nil, false
	}
	return &p, true
}
