package handlers

import (
	"net/url"
	"testing"

	"go.uber.org/mock/gomock"

	"collection-console/internal/testutil"
)

func TestAddUserHandlerAddsNewMember(t *testing.T) {
	form := url.Values{
		"collection":   {"col-4"},
		"emailAddress": {"new.user@example.com"},
		"role":         {"member"},
	}
	tc := testutil.NewTestContextWithForm(t, "/api/add-user", form)
	tc.WithHeader(tc.Config.Auth.TrustedProxyHeader, "caller-token")

	tc.MockBackend.EXPECT().
		AddUser(gomock.Any(), "col-4", "new.user@example.com", "member", "caller-token").
		Return(nil)

	tc.CallHandler(AddUserHandler)

	tc.AssertRedirect("/collections/col-4?notification=" +
		url.QueryEscape("User <strong>new.user@example.com</strong> added to collection") +
		"#sharing")
}

func TestAddUserHandlerUpdatesExistingMember(t *testing.T) {
	form := url.Values{
		"collection":   {"col-4"},
		"emailAddress": {"existing@example.com"},
		"role":         {"manager"},
		"user":         {"user-77"},
	}
	tc := testutil.NewTestContextWithForm(t, "/api/add-user", form)
	tc.WithHeader(tc.Config.Auth.TrustedProxyHeader, "caller-token")

	tc.MockBackend.EXPECT().
		AddUser(gomock.Any(), "col-4", "existing@example.com", "manager", "caller-token").
		Return(nil)

	tc.CallHandler(AddUserHandler)

	tc.AssertRedirect("/collections/col-4?notification=" +
		url.QueryEscape("User <strong>existing@example.com</strong> updated") +
		"#sharing")
}

func TestAddUserHandlerDefaultsRoleToMember(t *testing.T) {
	form := url.Values{
		"collection":   {"col-4"},
		"emailAddress": {"new.user@example.com"},
	}
	tc := testutil.NewTestContextWithForm(t, "/api/add-user", form)
	tc.WithHeader(tc.Config.Auth.TrustedProxyHeader, "caller-token")

	tc.MockBackend.EXPECT().
		AddUser(gomock.Any(), "col-4", "new.user@example.com", "member", "caller-token").
		Return(nil)

	tc.CallHandler(AddUserHandler)
}

func TestRemoveUserHandler(t *testing.T) {
	form := url.Values{
		"collection":   {"col-4"},
		"user":         {"user-77"},
		"emailAddress": {"leaving@example.com"},
	}
	tc := testutil.NewTestContextWithForm(t, "/api/remove-user", form)
	tc.WithHeader(tc.Config.Auth.TrustedProxyHeader, "caller-token")

	tc.MockBackend.EXPECT().
		RemoveUser(gomock.Any(), "col-4", "user-77", "caller-token").
		Return(nil)

	tc.CallHandler(RemoveUserHandler)

	tc.AssertRedirect("/collections/col-4?notification=" +
		url.QueryEscape("User <strong>leaving@example.com</strong> removed from collection") +
		"#sharing")
}
