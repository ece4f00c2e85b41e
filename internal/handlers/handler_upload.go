package handlers

import (
	"net/http"

	"collection-console/internal/middlewares"
)

// 256 MiB of multipart form data held in memory before spilling to disk.
const maxUploadMemory = 256 << 20

// UploadHandler accepts one or more files under the fileUpload1 field and
// uploads them to the backend one at a time, in form order. Per-file
// failures are logged but do not change the success notification.
func UploadHandler(ctx *middlewares.AppContext) {
	if err := ctx.Request.ParseMultipartForm(maxUploadMemory); err != nil {
		ctx.Logger.Warn("failed to parse upload form", "error", err)
		ctx.SetJSONError(http.StatusBadRequest, "invalid form data")
		return
	}

	collectionID := ctx.Request.FormValue("collection")
	token := middlewares.CallerToken(ctx)

	files := ctx.Request.MultipartForm.File["fileUpload1"]
	firstFilename := ""

	for _, header := range files {
		if firstFilename == "" {
			firstFilename = header.Filename
		}

		file, err := header.Open()
		if err != nil {
			ctx.Logger.Warn("failed to open uploaded file", "filename", header.Filename, "error", err)
			continue
		}

		err = ctx.Backend.UploadFile(ctx, collectionID, header.Filename, file, token)
		_ = file.Close()
		if err != nil {
			ctx.Logger.Warn("file upload failed", "filename", header.Filename, "error", err)
		}
	}

	// The notification counts selected files, not successes. Upload
	// errors are logged only.
	notification := fileUploadedNotification(len(files), firstFilename)
	redirectWithNotification(ctx, "/collections/"+collectionID, notification, "")
}
