package payments

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/mercadopago/sdk-go/pkg/requester"
)

type recordedBodyKey struct{}

type recordedBody struct {
	body []byte
}

// withRecordedBody asks the bodyRecorder to keep the response body of
// requests issued with the returned context.
func withRecordedBody(ctx context.Context) (context.Context, *recordedBody) {
	rb := &recordedBody{}
	return context.WithValue(ctx, recordedBodyKey{}, rb), rb
}

// bodyRecorder wraps the SDK requester and copies the response body bytes
// into the recordedBody carried by the request context, if any.
type bodyRecorder struct {
	next requester.Requester
}

func newBodyRecorder(next requester.Requester) *bodyRecorder {
	return &bodyRecorder{next: next}
}

func (r *bodyRecorder) Do(req *http.Request) (*http.Response, error) {
	res, err := r.next.Do(req)
	if err != nil || res == nil || res.Body == nil {
		return res, err
	}
	rb, ok := req.Context().Value(recordedBodyKey{}).(*recordedBody)
	if !ok {
		return res, nil
	}

	b, err := io.ReadAll(res.Body)
	_ = res.Body.Close()
	if err != nil {
		return nil, err
	}
	rb.body = b
	res.Body = io.NopCloser(bytes.NewReader(b))
	return res, nil
}
