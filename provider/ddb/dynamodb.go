/*
 * Copyright © 2025 Yardimhane Bilisim, All rights reserved.
 */

package ddb

import (
	"context"
	goerrors "errors"
	"fmt"
	"os"
	"sort"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/yardimhane/casestore/errors"
	"github.com/yardimhane/casestore/registry"
	"github.com/yardimhane/casestore/storagemodels"
)

// Key attributes of the shared single table. Every record is stored under
// PK = SK = "<EntityType>#<id>" with an EntityType discriminator, so all
// logical collections coexist in one table.
const (
	attrPK         = "PK"
	attrSK         = "SK"
	attrEntityType = "EntityType"
)

// Provider implements provider.Provider using AWS DynamoDB with a shared
// single-table layout. The provider-specific collection ID is the
// EntityType prefix (e.g. "BENEFICIARY").
type Provider struct {
	client    *sdk.Client
	tableName string
}

// NewClient initializes a DynamoDB client using static AWS credentials.
func NewClient(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return sdk.NewFromConfig(cfg), nil
}

// New constructs a Provider for the given table.
func New(client *sdk.Client, tableName string) *Provider {
	return &Provider{client: client, tableName: tableName}
}

// FromEnv constructs a Provider from AWS_ACCESS_KEY, AWS_SECRET_KEY,
// AWS_REGION and AWS_DDB_TABLE.
func FromEnv(ctx context.Context) (*Provider, error) {
	accessKey := os.Getenv("AWS_ACCESS_KEY")
	secretKey := os.Getenv("AWS_SECRET_KEY")
	region := os.Getenv("AWS_REGION")
	table := os.Getenv("AWS_DDB_TABLE")
	if accessKey == "" || secretKey == "" || region == "" || table == "" {
		return nil, errors.NewProviderUnavailableError(registry.ProviderDynamoDB,
			"AWS_ACCESS_KEY, AWS_SECRET_KEY, AWS_REGION and AWS_DDB_TABLE must be set")
	}

	client, err := NewClient(ctx, accessKey, secretKey, region)
	if err != nil {
		return nil, err
	}
	return New(client, table), nil
}

// Name implements provider.Provider.
func (p *Provider) Name() string {
	return registry.ProviderDynamoDB
}

// Ping implements provider.Provider.
func (p *Provider) Ping(ctx context.Context) error {
	if err := p.available(); err != nil {
		return err
	}
	_, err := p.client.DescribeTable(ctx, &sdk.DescribeTableInput{TableName: &p.tableName})
	if err != nil {
		return errors.NewProviderUnavailableError(registry.ProviderDynamoDB, err.Error())
	}
	return nil
}

// ListRaw implements provider.Provider. The filter expression narrows the
// scan server-side; skip and limit apply to the filtered sequence here,
// since a DynamoDB Limit bounds examined items, not matched ones.
func (p *Provider) ListRaw(ctx context.Context, collectionID string, params *storagemodels.QueryParams) ([]storagemodels.Record, int64, error) {
	if err := p.available(); err != nil {
		return nil, 0, err
	}

	matched, err := p.scanAll(ctx, collectionID, params)
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(matched))

	skip := 0
	if params != nil {
		skip = params.Skip
	}
	if skip > len(matched) {
		skip = len(matched)
	}
	matched = matched[skip:]

	limit := params.EffectiveLimit()
	if len(matched) > limit {
		matched = matched[:limit]
	}

	return matched, total, nil
}

// GetRaw implements provider.Provider.
func (p *Provider) GetRaw(ctx context.Context, collectionID, id string) (storagemodels.Record, error) {
	if err := p.available(); err != nil {
		return nil, err
	}

	out, err := p.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &p.tableName,
		Key:       buildKey(collectionID, id),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, errors.NewNotFoundError(collectionID, id)
	}
	return fromItem(out.Item)
}

// CreateRaw implements provider.Provider.
func (p *Provider) CreateRaw(ctx context.Context, collectionID string, rec storagemodels.Record) (storagemodels.Record, error) {
	if err := p.available(); err != nil {
		return nil, err
	}

	id, _ := rec["id"].(string)
	if id == "" {
		return nil, errors.NewValidationError("id", "record is missing an id")
	}

	item, err := toItem(collectionID, id, rec)
	if err != nil {
		return nil, err
	}

	condition := fmt.Sprintf("attribute_not_exists(%s)", attrPK)
	_, err = p.client.PutItem(ctx, &sdk.PutItemInput{
		TableName:           &p.tableName,
		Item:                item,
		ConditionExpression: &condition,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if goerrors.As(err, &cfe) {
			return nil, errors.NewAlreadyExistsError(collectionID, id)
		}
		return nil, fmt.Errorf("PutItem failed: %w", err)
	}
	return rec.Clone(), nil
}

// UpdateRaw implements provider.Provider.
func (p *Provider) UpdateRaw(ctx context.Context, collectionID, id string, patch storagemodels.Record) (storagemodels.Record, error) {
	if err := p.available(); err != nil {
		return nil, err
	}

	updateExpr, exprNames, exprValues, err := buildUpdateExpression(patch)
	if err != nil {
		return nil, err
	}

	condition := fmt.Sprintf("attribute_exists(%s)", attrPK)
	out, err := p.client.UpdateItem(ctx, &sdk.UpdateItemInput{
		TableName:                 &p.tableName,
		Key:                       buildKey(collectionID, id),
		UpdateExpression:          &updateExpr,
		ExpressionAttributeNames:  exprNames,
		ExpressionAttributeValues: exprValues,
		ConditionExpression:       &condition,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if goerrors.As(err, &cfe) {
			return nil, errors.NewNotFoundError(collectionID, id)
		}
		return nil, fmt.Errorf("UpdateItem failed: %w", err)
	}
	return fromItem(out.Attributes)
}

// DeleteRaw implements provider.Provider.
func (p *Provider) DeleteRaw(ctx context.Context, collectionID, id string) error {
	if err := p.available(); err != nil {
		return err
	}

	condition := fmt.Sprintf("attribute_exists(%s)", attrPK)
	_, err := p.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName:           &p.tableName,
		Key:                 buildKey(collectionID, id),
		ConditionExpression: &condition,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if goerrors.As(err, &cfe) {
			return errors.NewNotFoundError(collectionID, id)
		}
		return fmt.Errorf("DeleteItem failed: %w", err)
	}
	return nil
}

// CountRaw implements provider.Provider. The same filter expression feeds
// list and count; count pages use Select COUNT so no items are transferred.
func (p *Provider) CountRaw(ctx context.Context, collectionID string, params *storagemodels.QueryParams) (int64, error) {
	if err := p.available(); err != nil {
		return 0, err
	}

	query, err := BuildScanQuery(collectionID, params)
	if err != nil {
		return 0, err
	}

	var total int64
	var startKey map[string]types.AttributeValue
	for {
		out, err := p.client.Scan(ctx, &sdk.ScanInput{
			TableName:                 &p.tableName,
			FilterExpression:          &query.FilterExpression,
			ExpressionAttributeNames:  query.ExpressionAttributeNames,
			ExpressionAttributeValues: query.ExpressionAttributeValues,
			Select:                    types.SelectCount,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return 0, fmt.Errorf("count scan failed: %w", err)
		}
		total += int64(out.Count)
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return total, nil
}

// UpsertRaw implements provider.Provider. Unlike the Mongo provider this is
// a locate-then-put sequence, not a single conditional write: two concurrent
// first writes for the same key fields can still both insert.
func (p *Provider) UpsertRaw(ctx context.Context, collectionID string, keyFields, rec storagemodels.Record) (storagemodels.Record, error) {
	if err := p.available(); err != nil {
		return nil, err
	}

	params := &storagemodels.QueryParams{Limit: 1, Filters: map[string]any{}}
	for k, v := range keyFields {
		params.Filters[k] = v
	}

	existing, err := p.scanAll(ctx, collectionID, params)
	if err != nil {
		return nil, err
	}

	var merged storagemodels.Record
	if len(existing) > 0 {
		merged = existing[0].Clone()
		for k, v := range rec {
			if k == "id" {
				continue
			}
			merged[k] = v
		}
	} else {
		merged = rec.Clone()
	}
	for k, v := range keyFields {
		merged[k] = v
	}

	id, _ := merged["id"].(string)
	if id == "" {
		return nil, errors.NewValidationError("id", "record is missing an id")
	}

	item, err := toItem(collectionID, id, merged)
	if err != nil {
		return nil, err
	}
	if _, err := p.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &p.tableName,
		Item:      item,
	}); err != nil {
		return nil, fmt.Errorf("upsert PutItem failed: %w", err)
	}
	return merged, nil
}

// scanAll runs the filtered scan to completion and returns every matching
// record, sorted by id for stable pagination.
func (p *Provider) scanAll(ctx context.Context, collectionID string, params *storagemodels.QueryParams) ([]storagemodels.Record, error) {
	query, err := BuildScanQuery(collectionID, params)
	if err != nil {
		return nil, err
	}

	var records []storagemodels.Record
	var startKey map[string]types.AttributeValue
	for {
		out, err := p.client.Scan(ctx, &sdk.ScanInput{
			TableName:                 &p.tableName,
			FilterExpression:          &query.FilterExpression,
			ExpressionAttributeNames:  query.ExpressionAttributeNames,
			ExpressionAttributeValues: query.ExpressionAttributeValues,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		for _, item := range out.Items {
			rec, err := fromItem(item)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(records, func(i, j int) bool {
		a, _ := records[i]["id"].(string)
		b, _ := records[j]["id"].(string)
		return a < b
	})
	return records, nil
}

func (p *Provider) available() error {
	if p == nil || p.client == nil {
		return errors.NewProviderUnavailableError(registry.ProviderDynamoDB, "client not initialized")
	}
	return nil
}

func buildKey(collectionID, id string) map[string]types.AttributeValue {
	composite := collectionID + "#" + id
	return map[string]types.AttributeValue{
		attrPK: &types.AttributeValueMemberS{Value: composite},
		attrSK: &types.AttributeValueMemberS{Value: composite},
	}
}

// toItem marshals a record and injects the table key and EntityType
// discriminator attributes.
func toItem(collectionID, id string, rec storagemodels.Record) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(map[string]any(rec))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	composite := collectionID + "#" + id
	av[attrPK] = &types.AttributeValueMemberS{Value: composite}
	av[attrSK] = &types.AttributeValueMemberS{Value: composite}
	av[attrEntityType] = &types.AttributeValueMemberS{Value: collectionID}
	return av, nil
}

// fromItem unmarshals an item and strips the table bookkeeping attributes.
func fromItem(item map[string]types.AttributeValue) (storagemodels.Record, error) {
	var generic map[string]any
	if err := attributevalue.UnmarshalMap(item, &generic); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	delete(generic, attrPK)
	delete(generic, attrSK)
	delete(generic, attrEntityType)
	return storagemodels.Record(generic), nil
}
