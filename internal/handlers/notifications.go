package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"collection-console/internal/middlewares"
)

// Notification strings carry <strong> markup; the page templates render
// them as trusted HTML. They are part of the observable contract, so the
// wording here is fixed.

func fileUploadedNotification(count int, filename string) string {
	if count == 1 {
		return fmt.Sprintf("File <strong>%s</strong> uploaded", filename)
	}
	return fmt.Sprintf("<strong>%d</strong> files uploaded", count)
}

func urlsAddedNotification(count int, refresh bool) string {
	verb := "added to collection"
	if refresh {
		verb = "refreshed"
	}
	if count == 1 {
		return fmt.Sprintf("<strong>1</strong> URL %s", verb)
	}
	return fmt.Sprintf("<strong>%d</strong> URLs %s", count, verb)
}

func collectionDeletedNotification(name string) string {
	return fmt.Sprintf("Collection <strong>%s</strong> deleted", name)
}

func userAddedNotification(email string, update bool) string {
	if update {
		return fmt.Sprintf("User <strong>%s</strong> updated", email)
	}
	return fmt.Sprintf("User <strong>%s</strong> added to collection", email)
}

func userRemovedNotification(email string) string {
	return fmt.Sprintf("User <strong>%s</strong> removed from collection", email)
}

// redirectWithNotification sends a 303 to target with the notification
// URL-encoded as a query parameter. An optional fragment goes after the
// query so browsers keep both.
func redirectWithNotification(ctx *middlewares.AppContext, target, notification, fragment string) {
	location := target
	if notification != "" {
		location += "?notification=" + url.QueryEscape(notification)
	}
	if fragment != "" {
		location += "#" + fragment
	}
	ctx.Redirect(location, http.StatusSeeOther)
}
