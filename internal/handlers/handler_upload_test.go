package handlers

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"collection-console/internal/testutil"
)

var errUploadRejected = errors.New("Error connecting to the backend: HTTP 500.")

func multipartUploadBody(t *testing.T, collectionID string, filenames ...string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	require.NoError(t, writer.WriteField("collection", collectionID))
	for _, filename := range filenames {
		part, err := writer.CreateFormFile("fileUpload1", filename)
		require.NoError(t, err)
		_, err = io.WriteString(part, "contents of "+filename)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestUploadHandlerSingleFile(t *testing.T) {
	body, contentType := multipartUploadBody(t, "col-1", "report.pdf")
	tc := testutil.NewTestContextWithBody(t, "POST", "/api/upload", body, contentType)
	tc.WithHeader(tc.Config.Auth.TrustedProxyHeader, "caller-token")

	tc.MockBackend.EXPECT().
		UploadFile(gomock.Any(), "col-1", "report.pdf", gomock.Any(), "caller-token").
		Return(nil)

	tc.CallHandler(UploadHandler)

	tc.AssertRedirect("/collections/col-1?notification=" +
		url.QueryEscape("File <strong>report.pdf</strong> uploaded"))
}

func TestUploadHandlerMultipleFilesUploadSequentially(t *testing.T) {
	body, contentType := multipartUploadBody(t, "col-1", "a.pdf", "b.pdf", "c.pdf")
	tc := testutil.NewTestContextWithBody(t, "POST", "/api/upload", body, contentType)
	tc.WithHeader(tc.Config.Auth.TrustedProxyHeader, "caller-token")

	gomock.InOrder(
		tc.MockBackend.EXPECT().
			UploadFile(gomock.Any(), "col-1", "a.pdf", gomock.Any(), "caller-token").
			Return(nil),
		tc.MockBackend.EXPECT().
			UploadFile(gomock.Any(), "col-1", "b.pdf", gomock.Any(), "caller-token").
			Return(nil),
		tc.MockBackend.EXPECT().
			UploadFile(gomock.Any(), "col-1", "c.pdf", gomock.Any(), "caller-token").
			Return(nil),
	)

	tc.CallHandler(UploadHandler)

	tc.AssertRedirect("/collections/col-1?notification=" +
		url.QueryEscape("<strong>3</strong> files uploaded"))
}

func TestUploadHandlerFailedUploadStillReportsCount(t *testing.T) {
	body, contentType := multipartUploadBody(t, "col-1", "a.pdf", "b.pdf")
	tc := testutil.NewTestContextWithBody(t, "POST", "/api/upload", body, contentType)
	tc.WithHeader(tc.Config.Auth.TrustedProxyHeader, "caller-token")

	gomock.InOrder(
		tc.MockBackend.EXPECT().
			UploadFile(gomock.Any(), "col-1", "a.pdf", gomock.Any(), "caller-token").
			Return(nil),
		tc.MockBackend.EXPECT().
			UploadFile(gomock.Any(), "col-1", "b.pdf", gomock.Any(), "caller-token").
			Return(errUploadRejected),
	)

	tc.CallHandler(UploadHandler)

	tc.AssertRedirect("/collections/col-1?notification=" +
		url.QueryEscape("<strong>2</strong> files uploaded"))
}
