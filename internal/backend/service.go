package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"collection-console/internal/models"
)

//go:generate mockgen -source=service.go -destination=../mocks/backend.go -package=mocks

// Service is the typed surface the proxy handlers call. Each method maps to
// exactly one backend request (GetCollection filters the list client-side,
// matching the backend's surface). A nil error means the call succeeded;
// error messages are user-facing.
type Service interface {
	GetCollections(ctx context.Context, authToken string) (models.CollectionList, error)
	GetCollection(ctx context.Context, collectionID, authToken string) (models.Collection, error)
	AddCollection(ctx context.Context, name, description, prompt, authToken string) (models.Collection, error)
	UpdateCollection(ctx context.Context, collectionID, name, description, prompt, authToken string) error
	DeleteCollection(ctx context.Context, collectionID, authToken string) error

	GetResources(ctx context.Context, collectionID string, page, pageSize int, authToken string) (models.ResourceList, error)
	GetResourceDetails(ctx context.Context, collectionID, resourceID, authToken string) (models.Resource, error)
	GetResourceFragments(ctx context.Context, collectionID, resourceID, authToken string) ([]models.Document, error)
	UploadFile(ctx context.Context, collectionID, filename string, file io.Reader, authToken string) error
	AddURLs(ctx context.Context, collectionID string, urls []string, authToken string) error
	DeleteResource(ctx context.Context, collectionID, resourceID, authToken string) error
	UpdateSingleDocument(ctx context.Context, collectionID, resourceID, pageContent, authToken string) (json.RawMessage, error)

	GetUsers(ctx context.Context, collectionID, authToken string) ([]models.UserRole, error)
	AddUser(ctx context.Context, collectionID, email, role, authToken string) error
	RemoveUser(ctx context.Context, collectionID, userID, authToken string) error
}

func (c *Client) GetCollections(ctx context.Context, authToken string) (models.CollectionList, error) {
	body, err := c.makeRequest(ctx, "/collections", authToken, requestOptions{
		operation: "collections.list",
	})

	var list models.CollectionList
	c.decode(body, &list, "collections.list")
	return list, err
}

func (c *Client) GetCollection(ctx context.Context, collectionID, authToken string) (models.Collection, error) {
	list, err := c.GetCollections(ctx, authToken)
	if err != nil {
		return models.Collection{}, err
	}

	for _, collection := range list.Collections {
		if collection.ID == collectionID {
			return collection, nil
		}
	}

	return models.Collection{}, fmt.Errorf("Collection not found")
}

type collectionBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Prompt      string `json:"prompt,omitempty"`
}

func (c *Client) AddCollection(ctx context.Context, name, description, prompt, authToken string) (models.Collection, error) {
	payload, _ := json.Marshal(collectionBody{Name: name, Description: description, Prompt: prompt})

	body, err := c.makeRequest(ctx, "/collections", authToken, requestOptions{
		method:      http.MethodPost,
		body:        bytes.NewReader(payload),
		contentType: "application/json",
		operation:   "collections.add",
	})

	var collection models.Collection
	c.decode(body, &collection, "collections.add")
	return collection, err
}

func (c *Client) UpdateCollection(ctx context.Context, collectionID, name, description, prompt, authToken string) error {
	payload, _ := json.Marshal(collectionBody{Name: name, Description: description, Prompt: prompt})

	_, err := c.makeRequest(ctx, "/collections/"+url.PathEscape(collectionID), authToken, requestOptions{
		method:      http.MethodPut,
		body:        bytes.NewReader(payload),
		contentType: "application/json",
		operation:   "collections.update",
	})
	return err
}

func (c *Client) DeleteCollection(ctx context.Context, collectionID, authToken string) error {
	_, err := c.makeRequest(ctx, "/collections/"+url.PathEscape(collectionID), authToken, requestOptions{
		method:    http.MethodDelete,
		operation: "collections.delete",
	})
	return err
}

func (c *Client) GetResources(ctx context.Context, collectionID string, page, pageSize int, authToken string) (models.ResourceList, error) {
	endpoint := fmt.Sprintf("/collections/%s/resources?page=%d&page_size=%d", url.PathEscape(collectionID), page, pageSize)
	body, err := c.makeRequest(ctx, endpoint, authToken, requestOptions{
		operation: "resources.list",
	})

	var list models.ResourceList
	c.decode(body, &list, "resources.list")
	return list, err
}

func (c *Client) GetResourceDetails(ctx context.Context, collectionID, resourceID, authToken string) (models.Resource, error) {
	endpoint := fmt.Sprintf("/collections/%s/resources/%s", url.PathEscape(collectionID), url.PathEscape(resourceID))
	body, err := c.makeRequest(ctx, endpoint, authToken, requestOptions{
		operation: "resources.details",
	})

	var resource models.Resource
	c.decode(body, &resource, "resources.details")
	return resource, err
}

func (c *Client) GetResourceFragments(ctx context.Context, collectionID, resourceID, authToken string) ([]models.Document, error) {
	endpoint := fmt.Sprintf("/collections/%s/resources/%s/documents", url.PathEscape(collectionID), url.PathEscape(resourceID))
	body, err := c.makeRequest(ctx, endpoint, authToken, requestOptions{
		operation: "resources.documents",
	})

	var list models.DocumentList
	c.decode(body, &list, "resources.documents")
	return list.Documents, err
}

func (c *Client) UploadFile(ctx context.Context, collectionID, filename string, file io.Reader, authToken string) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("Error connecting to the backend: %v", err)
	}

	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("Error connecting to the backend: %v", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("Error connecting to the backend: %v", err)
	}

	endpoint := fmt.Sprintf("/collections/%s/resources", url.PathEscape(collectionID))
	_, err = c.makeRequest(ctx, endpoint, authToken, requestOptions{
		method:      http.MethodPost,
		body:        &buf,
		contentType: writer.FormDataContentType(),
		operation:   "resources.upload",
	})
	return err
}

func (c *Client) AddURLs(ctx context.Context, collectionID string, urls []string, authToken string) error {
	payload, _ := json.Marshal(urls)

	endpoint := fmt.Sprintf("/collections/%s/resources/urls", url.PathEscape(collectionID))
	_, err := c.makeRequest(ctx, endpoint, authToken, requestOptions{
		method:      http.MethodPost,
		body:        bytes.NewReader(payload),
		contentType: "application/json",
		operation:   "resources.add_urls",
	})
	return err
}

func (c *Client) DeleteResource(ctx context.Context, collectionID, resourceID, authToken string) error {
	endpoint := fmt.Sprintf("/collections/%s/resources/%s", url.PathEscape(collectionID), url.PathEscape(resourceID))
	_, err := c.makeRequest(ctx, endpoint, authToken, requestOptions{
		method:    http.MethodDelete,
		operation: "resources.delete",
	})
	return err
}

func (c *Client) UpdateSingleDocument(ctx context.Context, collectionID, resourceID, pageContent, authToken string) (json.RawMessage, error) {
	payload, _ := json.Marshal(models.Document{PageContent: pageContent})

	endpoint := fmt.Sprintf("/collections/%s/resources/%s/documents", url.PathEscape(collectionID), url.PathEscape(resourceID))
	return c.makeRequest(ctx, endpoint, authToken, requestOptions{
		method:      http.MethodPut,
		body:        bytes.NewReader(payload),
		contentType: "application/json",
		operation:   "resources.update_document",
	})
}

func (c *Client) GetUsers(ctx context.Context, collectionID, authToken string) ([]models.UserRole, error) {
	endpoint := fmt.Sprintf("/collections/%s/users?page_size=1000", url.PathEscape(collectionID))
	body, err := c.makeRequest(ctx, endpoint, authToken, requestOptions{
		operation: "users.list",
	})

	var list models.UserRoleList
	c.decode(body, &list, "users.list")
	return list.UserRoles, err
}

type userBody struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (c *Client) AddUser(ctx context.Context, collectionID, email, role, authToken string) error {
	payload, _ := json.Marshal(userBody{Email: email, Role: role})

	endpoint := fmt.Sprintf("/collections/%s/users", url.PathEscape(collectionID))
	_, err := c.makeRequest(ctx, endpoint, authToken, requestOptions{
		method:      http.MethodPost,
		body:        bytes.NewReader(payload),
		contentType: "application/json",
		operation:   "users.add",
	})
	return err
}

func (c *Client) RemoveUser(ctx context.Context, collectionID, userID, authToken string) error {
	endpoint := fmt.Sprintf("/collections/%s/users/%s", url.PathEscape(collectionID), url.PathEscape(userID))
	_, err := c.makeRequest(ctx, endpoint, authToken, requestOptions{
		method:    http.MethodDelete,
		operation: "users.remove",
	})
	return err
}
