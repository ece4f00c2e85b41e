package handlers

import (
	"errors"
	"net/url"
	"testing"

	"go.uber.org/mock/gomock"

	"collection-console/internal/models"
	"collection-console/internal/testutil"
)

func TestDeleteCollectionHandlerNotificationNamesCollection(t *testing.T) {
	form := url.Values{
		"collectionId":   {"col-9"},
		"collectionName": {"Quarterly Reports"},
	}
	tc := testutil.NewTestContextWithForm(t, "/api/delete-collection", form)
	tc.WithHeader(tc.Config.Auth.TrustedProxyHeader, "caller-token")

	tc.MockBackend.EXPECT().
		DeleteCollection(gomock.Any(), "col-9", "caller-token").
		Return(nil)

	tc.CallHandler(DeleteCollectionHandler)

	tc.AssertRedirect("/?notification=" +
		url.QueryEscape("Collection <strong>Quarterly Reports</strong> deleted"))
}

func TestDeleteCollectionHandlerBackendErrorStillRedirects(t *testing.T) {
	form := url.Values{
		"collectionId":   {"col-9"},
		"collectionName": {"Quarterly Reports"},
	}
	tc := testutil.NewTestContextWithForm(t, "/api/delete-collection", form)
	tc.WithHeader(tc.Config.Auth.TrustedProxyHeader, "caller-token")

	tc.MockBackend.EXPECT().
		DeleteCollection(gomock.Any(), "col-9", "caller-token").
		Return(errors.New("Error connecting to the backend: HTTP 500."))

	tc.CallHandler(DeleteCollectionHandler)

	tc.AssertRedirect("/?notification=" +
		url.QueryEscape("Collection <strong>Quarterly Reports</strong> deleted"))
}

func TestUpdateCollectionHandlerEmptyNameIsNoOp(t *testing.T) {
	form := url.Values{
		"collection": {"col-3"},
		"name":       {""},
	}
	tc := testutil.NewTestContextWithForm(t, "/api/update-collection", form)
	tc.WithHeader(tc.Config.Auth.TrustedProxyHeader, "caller-token")

	tc.CallHandler(UpdateCollectionHandler)

	tc.AssertRedirect("/collections/col-3")
}

func TestUpdateCollectionHandlerUpdatesExisting(t *testing.T) {
	form := url.Values{
		"collection":  {"col-3"},
		"name":        {"Renamed"},
		"description": {"New description"},
		"prompt":      {"Answer tersely."},
	}
	tc := testutil.NewTestContextWithForm(t, "/api/update-collection", form)
	tc.WithHeader(tc.Config.Auth.TrustedProxyHeader, "caller-token")

	tc.MockBackend.EXPECT().
		UpdateCollection(gomock.Any(), "col-3", "Renamed", "New description", "Answer tersely.", "caller-token").
		Return(nil)

	tc.CallHandler(UpdateCollectionHandler)

	tc.AssertRedirect("/collections/col-3#settings")
}

func TestUpdateCollectionHandlerCreatesWhenNoID(t *testing.T) {
	form := url.Values{
		"name":        {"Fresh"},
		"description": {"Brand new"},
	}
	tc := testutil.NewTestContextWithForm(t, "/api/update-collection", form)
	tc.WithHeader(tc.Config.Auth.TrustedProxyHeader, "caller-token")

	tc.MockBackend.EXPECT().
		AddCollection(gomock.Any(), "Fresh", "Brand new", "", "caller-token").
		Return(models.Collection{ID: "col-new"}, nil)

	tc.CallHandler(UpdateCollectionHandler)

	tc.AssertRedirect("/collections/col-new")
}
