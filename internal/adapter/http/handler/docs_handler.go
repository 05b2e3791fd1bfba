package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

const (
	apiTitle       = "Simple Blog API"
	apiVersion     = "1.0"
	apiDescription = "An API to control a micro blog"

	blogModelRef  = "#/components/schemas/BlogModel"
	errorModelRef = "#/components/schemas/ErrorModel"
)

// OpenAPI 3 ドキュメントのうち、このサービスで使う部分だけを表す。
type openAPIDocument struct {
	OpenAPI    string                       `json:"openapi" yaml:"openapi"`
	Info       openAPIInfo                  `json:"info" yaml:"info"`
	Tags       []openAPITag                 `json:"tags" yaml:"tags"`
	Paths      map[string]map[string]*apiOp `json:"paths" yaml:"paths"`
	Components openAPIComponents            `json:"components" yaml:"components"`
}

type openAPIInfo struct {
	Title       string `json:"title" yaml:"title"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description" yaml:"description"`
}

type openAPITag struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

type apiOp struct {
	OperationID string                  `json:"operationId" yaml:"operationId"`
	Tags        []string                `json:"tags" yaml:"tags"`
	Parameters  []apiParameter          `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody *apiRequestBody         `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   map[string]*apiResponse `json:"responses" yaml:"responses"`
}

type apiParameter struct {
	Name        string     `json:"name" yaml:"name"`
	In          string     `json:"in" yaml:"in"`
	Description string     `json:"description" yaml:"description"`
	Required    bool       `json:"required" yaml:"required"`
	Schema      *apiSchema `json:"schema" yaml:"schema"`
}

type apiRequestBody struct {
	Required bool                    `json:"required" yaml:"required"`
	Content  map[string]apiMediaType `json:"content" yaml:"content"`
}

type apiResponse struct {
	Description string                  `json:"description" yaml:"description"`
	Content     map[string]apiMediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

type apiMediaType struct {
	Schema *apiSchema `json:"schema" yaml:"schema"`
}

type apiSchema struct {
	Ref         string                `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Type        string                `json:"type,omitempty" yaml:"type,omitempty"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	ReadOnly    bool                  `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
	Required    []string              `json:"required,omitempty" yaml:"required,omitempty"`
	Properties  map[string]*apiSchema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Items       *apiSchema            `json:"items,omitempty" yaml:"items,omitempty"`
}

type openAPIComponents struct {
	Schemas map[string]*apiSchema `json:"schemas" yaml:"schemas"`
}

// DocsHandler は投稿 API の OpenAPI ドキュメントを JSON と YAML で返す。
type DocsHandler struct {
	path     string
	document *openAPIDocument
	yamlBody []byte
}

// NewDocsHandler は path に公開するドキュメントを組み立てる。
func NewDocsHandler(path string) (*DocsHandler, error) {
	if path == "" || path[0] != '/' {
		return nil, fmt.Errorf("docs: path must start with '/': %q", path)
	}

	doc := buildOpenAPIDocument()
	body, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("docs: marshal yaml: %w", err)
	}

	return &DocsHandler{path: path, document: doc, yamlBody: body}, nil
}

// Path はドキュメントを公開するパスを返す。
func (h *DocsHandler) Path() string {
	return h.path
}

func (h *DocsHandler) ServeJSON(c *gin.Context) {
	c.JSON(http.StatusOK, h.document)
}

func (h *DocsHandler) ServeYAML(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml; charset=utf-8", h.yamlBody)
}

func buildOpenAPIDocument() *openAPIDocument {
	blogModel := &apiSchema{Ref: blogModelRef}
	postBody := &apiRequestBody{
		Required: true,
		Content: map[string]apiMediaType{
			"application/json":                  {Schema: blogModel},
			"application/x-www-form-urlencoded": {Schema: blogModel},
		},
	}
	jsonOf := func(s *apiSchema) map[string]apiMediaType {
		return map[string]apiMediaType{"application/json": {Schema: s}}
	}
	idParam := []apiParameter{{
		Name:        "id",
		In:          "path",
		Description: "The post identifier",
		Required:    true,
		Schema:      &apiSchema{Type: "integer"},
	}}
	notFound := &apiResponse{Description: messagePostNotFound, Content: jsonOf(&apiSchema{Ref: errorModelRef})}
	invalid := &apiResponse{Description: messagePostValidationFailed, Content: jsonOf(&apiSchema{Ref: errorModelRef})}

	return &openAPIDocument{
		OpenAPI: "3.0.3",
		Info: openAPIInfo{
			Title:       apiTitle,
			Version:     apiVersion,
			Description: apiDescription,
		},
		Tags: []openAPITag{{Name: "posts", Description: "Blog posts"}},
		Paths: map[string]map[string]*apiOp{
			"/posts/": {
				"get": {
					OperationID: "get_posts",
					Tags:        []string{"posts"},
					Responses: map[string]*apiResponse{
						"200": {Description: "Success", Content: jsonOf(&apiSchema{Type: "array", Items: blogModel})},
					},
				},
				"post": {
					OperationID: "add_post",
					Tags:        []string{"posts"},
					RequestBody: postBody,
					Responses: map[string]*apiResponse{
						"201": {Description: "Created", Content: jsonOf(blogModel)},
						"400": invalid,
					},
				},
			},
			"/posts/{id}": {
				"get": {
					OperationID: "get_post",
					Tags:        []string{"posts"},
					Parameters:  idParam,
					Responses: map[string]*apiResponse{
						"200": {Description: "Success", Content: jsonOf(blogModel)},
						"404": notFound,
					},
				},
				"put": {
					OperationID: "update_post",
					Tags:        []string{"posts"},
					Parameters:  idParam,
					RequestBody: postBody,
					Responses: map[string]*apiResponse{
						"200": {Description: "Success", Content: jsonOf(blogModel)},
						"400": invalid,
						"404": notFound,
					},
				},
				"delete": {
					OperationID: "delete_post",
					Tags:        []string{"posts"},
					Parameters:  idParam,
					Responses: map[string]*apiResponse{
						"204": {Description: "Post deleted"},
						"404": notFound,
					},
				},
			},
		},
		Components: openAPIComponents{
			Schemas: map[string]*apiSchema{
				"BlogModel": {
					Type:     "object",
					Required: []string{"title", "description"},
					Properties: map[string]*apiSchema{
						"id":          {Type: "integer", ReadOnly: true, Description: "Post identifier"},
						"title":       {Type: "string", Description: "Post title"},
						"description": {Type: "string", Description: "Post content"},
					},
				},
				"ErrorModel": {
					Type:     "object",
					Required: []string{"message"},
					Properties: map[string]*apiSchema{
						"message": {Type: "string"},
						"errors":  {Type: "object", Description: "Missing field name to reason"},
					},
				},
			},
		},
	}
}
