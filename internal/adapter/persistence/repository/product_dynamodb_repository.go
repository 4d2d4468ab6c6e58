package repository

import (
	"context"
	"fmt"
	"sort"

	"forro_orcamento/internal/domain/entities"
	"forro_orcamento/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultProductsTableName = "products"
	batchWriteLimit          = 25
	maxBatchAttempts         = 5
)

type productItem struct {
	ID          string  `dynamodbav:"id"`
	Position    int     `dynamodbav:"position"`
	Name        string  `dynamodbav:"name"`
	Category    string  `dynamodbav:"category"`
	SubCategory string  `dynamodbav:"sub_category,omitempty"`
	Color       string  `dynamodbav:"color"`
	Width       float64 `dynamodbav:"width,omitempty"`
	Length      float64 `dynamodbav:"length,omitempty"`
	Price       string  `dynamodbav:"price"`
	Unit        string  `dynamodbav:"unit"`
}

// ProductDynamoRepository reads and seeds the products table.
//
// Table requirements:
//   - PK: id (string)
//
// Scan order is undefined, so every item carries its catalog position and
// ListAll sorts by it. The resolver relies on that order for tie breaking.
type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client, tableName string) *ProductDynamoRepository {
	if tableName == "" {
		tableName = defaultProductsTableName
	}
	return &ProductDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProductDynamoRepository) ListAll(ctx context.Context) ([]entities.Product, error) {
	var items []productItem
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.tableName, err)
		}
		var batch []productItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("unmarshal products: %w", err)
		}
		items = append(items, batch...)
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Position < items[j].Position })

	out := make([]entities.Product, 0, len(items))
	for _, it := range items {
		p, err := fromProductItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *ProductDynamoRepository) PutAll(ctx context.Context, products []entities.Product) error {
	for start := 0; start < len(products); start += batchWriteLimit {
		end := min(start+batchWriteLimit, len(products))

		reqs := make([]types.WriteRequest, 0, end-start)
		for i := start; i < end; i++ {
			av, err := attributevalue.MarshalMap(toProductItem(products[i], i))
			if err != nil {
				return err
			}
			reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}

		pending := map[string][]types.WriteRequest{r.tableName: reqs}
		for attempt := 0; len(pending) > 0; attempt++ {
			if attempt == maxBatchAttempts {
				return fmt.Errorf("batch write %s: %d items left unprocessed", r.tableName, len(pending[r.tableName]))
			}
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return fmt.Errorf("batch write %s: %w", r.tableName, err)
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}

func toProductItem(p entities.Product, position int) productItem {
	return productItem{
		ID:          p.ID,
		Position:    position,
		Name:        p.Name,
		Category:    string(p.Category),
		SubCategory: p.SubCategory,
		Color:       p.Color,
		Width:       p.Dimensions.Width,
		Length:      p.Dimensions.Length,
		Price:       p.Price.String(),
		Unit:        p.Unit,
	}
}

func fromProductItem(it productItem) (entities.Product, error) {
	price, err := decimal.NewFromString(it.Price)
	if err != nil {
		return entities.Product{}, fmt.Errorf("product %s: invalid price %q: %w", it.ID, it.Price, err)
	}
	return entities.Product{
		ID:          it.ID,
		Name:        it.Name,
		Category:    entities.Category(it.Category),
		SubCategory: it.SubCategory,
		Color:       it.Color,
		Dimensions:  entities.ProductDimensions{Width: it.Width, Length: it.Length},
		Price:       price,
		Unit:        it.Unit,
	}, nil
}
