package dao

import (
	"context"

	"github.com/olivere/elastic/v7"
)

type anyESDAO struct {
	client *elastic.Client
}

func NewAnyESDAO(client *elastic.Client) AnyDAO {
	return &anyESDAO{client: client}
}

func (a *anyESDAO) Input(ctx context.Context, index, docID, data string) error {
	_, err := a.client.Index().
		Index(index).
		Id(docID).
		BodyString(data).
		Do(ctx)
	return err
}
