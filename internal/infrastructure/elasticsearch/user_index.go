package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	es "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/samber/oops"

	"github.com/oksasatya/go-ddd-auth/internal/application"
	"github.com/oksasatya/go-ddd-auth/internal/domain/entity"
)

const requestTimeout = 3 * time.Second

// UserIndex keeps a searchable projection of users in Elasticsearch.
type UserIndex struct {
	client *es.Client
	index  string
}

func NewUserIndex(client *es.Client, index string) *UserIndex {
	return &UserIndex{client: client, index: index}
}

func (x *UserIndex) Index(ctx context.Context, u *entity.User) error {
	p := u.ToPrimitives()
	doc := application.UserDocument{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Roles:     p.Roles,
		IndexedAt: time.Now().UTC(),
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return oops.Code("ES_ENCODE_FAILED").Wrap(err)
	}

	req := esapi.IndexRequest{Index: x.index, DocumentID: p.ID, Body: bytes.NewReader(b), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, x.client)
	if err != nil {
		return oops.Code("ES_INDEX_FAILED").With("user_id", p.ID).Wrap(err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return oops.Code("ES_INDEX_REJECTED").With("user_id", p.ID).With("status", res.StatusCode).Errorf("index response: %s", res.Status())
	}
	return nil
}

// Search runs a multi_match query over email (boosted) and name.
func (x *UserIndex) Search(ctx context.Context, q string, size int) ([]application.UserDocument, error) {
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"email^2", "name"},
			},
		},
		"size": size,
	}
	b, err := json.Marshal(query)
	if err != nil {
		return nil, oops.Code("ES_ENCODE_FAILED").Wrap(err)
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := x.client.Search(
		x.client.Search.WithContext(c),
		x.client.Search.WithIndex(x.index),
		x.client.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, oops.Code("ES_SEARCH_FAILED").Wrap(err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, oops.Code("ES_SEARCH_REJECTED").With("status", res.StatusCode).Errorf("search response: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string                   `json:"_id"`
				Source application.UserDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, oops.Code("ES_DECODE_FAILED").Wrap(err)
	}

	out := make([]application.UserDocument, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		doc := h.Source
		if doc.ID == "" {
			doc.ID = h.ID
		}
		out = append(out, doc)
	}
	return out, nil
}

var _ application.UserIndexer = (*UserIndex)(nil)
