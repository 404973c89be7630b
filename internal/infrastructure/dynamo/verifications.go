package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/verification-api/internal/domain"
	"github.com/verification-api/internal/pkg/expiry"
	"github.com/verification-api/internal/pkg/id"
)

// Attribute names used in update expressions and key maps.
const (
	attrUsernameKey = "username_key"
	attrJoinedGame  = "joined_game"
)

// VerificationRepo is the table-backed verification store.
// Hash key: username_key (lowercase Roblox username), one item per key.
type VerificationRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewVerificationRepo(client *dynamodb.Client, tableName string) *VerificationRepo {
	return &VerificationRepo{client: client, tableName: tableName}
}

// Upsert writes the record under its username key, overwriting any existing
// item. The auto-assigned id and created_at of an existing item are carried
// over so they survive the overwrite.
func (r *VerificationRepo) Upsert(ctx context.Context, record *domain.Verification) (*domain.Verification, error) {
	stored := *record
	existing, err := r.getItem(ctx, record.UsernameKey)
	switch {
	case err == nil:
		stored.ID = existing.ID
		stored.CreatedAt = existing.CreatedAt
	case errors.Is(err, domain.ErrNotFound):
		stored.ID = id.New()
		stored.CreatedAt = time.Now().UTC()
	default:
		return nil, err
	}

	item, err := attributevalue.MarshalMap(&stored)
	if err != nil {
		return nil, fmt.Errorf("marshal verification: %w", err)
	}
	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	}); err != nil {
		return nil, err
	}
	return &stored, nil
}

// UpdateJoinedGame sets only the joined_game attribute. The condition
// expression turns an update of a missing item into domain.ErrNotFound
// instead of silently creating one.
func (r *VerificationRepo) UpdateJoinedGame(ctx context.Context, key string, joined bool) error {
	ue, err := buildUpdateExpr(map[string]interface{}{attrJoinedGame: joined})
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey(attrUsernameKey, key),
		UpdateExpression:          aws.String(ue.Expr),
		ConditionExpression:       aws.String("attribute_exists(" + attrUsernameKey + ")"),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		return fmt.Errorf("verification %q: %w", key, domain.ErrNotFound)
	}
	return err
}

// Fetch reads the item and evaluates expiry. An expired item is deleted as a
// side effect and reported as not found.
func (r *VerificationRepo) Fetch(ctx context.Context, key string, now time.Time) (*domain.Verification, error) {
	record, err := r.getItem(ctx, key)
	if err != nil {
		return nil, err
	}
	if expiry.Expired(record.TimeToVerify, now) {
		if err := r.Delete(ctx, key); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("verification %q expired: %w", key, domain.ErrNotFound)
	}
	return record, nil
}

// Delete removes the item, reporting domain.ErrNotFound when there was
// nothing to remove. ReturnValues distinguishes the two cases.
func (r *VerificationRepo) Delete(ctx context.Context, key string) error {
	out, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          strKey(attrUsernameKey, key),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return err
	}
	if out.Attributes == nil {
		return fmt.Errorf("verification %q: %w", key, domain.ErrNotFound)
	}
	return nil
}

func (r *VerificationRepo) getItem(ctx context.Context, key string) (*domain.Verification, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey(attrUsernameKey, key),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("verification %q: %w", key, domain.ErrNotFound)
	}
	var record domain.Verification
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return nil, err
	}
	return &record, nil
}
