package repository

import (
	"context"
	"errors"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMaintenanceOrdersTableName = "maintenance_orders"

type costEntryItem struct {
	Name  string `dynamodbav:"name"`
	Value string `dynamodbav:"value"`
}

type maintenanceOrderItem struct {
	ID                  string          `dynamodbav:"id"`
	ClientID            string          `dynamodbav:"client_id"`
	Equipment           *string         `dynamodbav:"equipment,omitempty"`
	ServiceTitle        string          `dynamodbav:"service_title"`
	Description         string          `dynamodbav:"description"`
	Value               string          `dynamodbav:"value"`
	InternalCost        *string         `dynamodbav:"internal_cost,omitempty"`
	Costs               []costEntryItem `dynamodbav:"costs,omitempty"`
	Status              string          `dynamodbav:"status"`
	OpenedAt            string          `dynamodbav:"opened_at"`
	StartDate           *string         `dynamodbav:"start_date,omitempty"`
	DeliveryDate        *string         `dynamodbav:"delivery_date,omitempty"`
	ClosedAt            *string         `dynamodbav:"closed_at,omitempty"`
	NextMaintenanceDate *string         `dynamodbav:"next_maintenance_date,omitempty"`
	NextReminderAt      *string         `dynamodbav:"next_reminder_at,omitempty"`
	NextReminderStep    *string         `dynamodbav:"next_reminder_step,omitempty"`
	CreatedAt           string          `dynamodbav:"created_at"`
	UpdatedAt           string          `dynamodbav:"updated_at"`
}

// MaintenanceOrderDynamoRepository persists MaintenanceOrder entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//
// Status transitions are guarded with a condition on the current status so
// that a single order never sees interleaved read-modify-write from two
// concurrent transition requests.

type MaintenanceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaintenanceOrderRepository = (*MaintenanceOrderDynamoRepository)(nil)

func NewMaintenanceOrderDynamoRepository(ddb *dynamodb.Client) *MaintenanceOrderDynamoRepository {
	return &MaintenanceOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MAINTENANCE_ORDERS_TABLE", defaultMaintenanceOrdersTableName),
	}
}

func (r *MaintenanceOrderDynamoRepository) Create(ctx context.Context, o entities.MaintenanceOrder) (entities.MaintenanceOrder, error) {
	av, err := attributevalue.MarshalMap(toMaintenanceOrderItem(o))
	if err != nil {
		return entities.MaintenanceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.MaintenanceOrder{}, err
	}
	return o, nil
}

func (r *MaintenanceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.MaintenanceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MaintenanceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.MaintenanceOrder{}, nil
	}

	var it maintenanceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MaintenanceOrder{}, err
	}
	return fromMaintenanceOrderItem(it), nil
}

// Update replaces the full record. The write is conditioned on the item
// existing so an edit can never resurrect a deleted order.
func (r *MaintenanceOrderDynamoRepository) Update(ctx context.Context, o entities.MaintenanceOrder) (entities.MaintenanceOrder, error) {
	av, err := attributevalue.MarshalMap(toMaintenanceOrderItem(o))
	if err != nil {
		return entities.MaintenanceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.MaintenanceOrder{}, nil
		}
		return entities.MaintenanceOrder{}, err
	}
	return o, nil
}

func (r *MaintenanceOrderDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

// List scans the whole table. Financial aggregation is computed in memory
// over this one-shot fetch, so the scan follows pagination to the end.
func (r *MaintenanceOrderDynamoRepository) List(ctx context.Context) ([]entities.MaintenanceOrder, error) {
	var (
		orders   []entities.MaintenanceOrder
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []maintenanceOrderItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			orders = append(orders, fromMaintenanceOrderItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func (r *MaintenanceOrderDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.MaintenanceStatus, set interfaces.StatusTransition) (entities.MaintenanceOrder, error) {
	now := timeToItem(time.Now())

	expr := "SET #status = :to, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":from":       &types.AttributeValueMemberS{Value: string(from)},
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if set.DeliveryDate != nil {
		expr += ", #delivery_date = :delivery_date"
		vals[":delivery_date"] = &types.AttributeValueMemberS{Value: timeToItem(*set.DeliveryDate)}
		names["#delivery_date"] = "delivery_date"
	}
	if set.ClosedAt != nil {
		expr += ", #closed_at = :closed_at"
		vals[":closed_at"] = &types.AttributeValueMemberS{Value: timeToItem(*set.ClosedAt)}
		names["#closed_at"] = "closed_at"
	}
	if set.NextMaintenanceDate != nil {
		expr += ", #next_maintenance_date = :next_maintenance_date"
		vals[":next_maintenance_date"] = &types.AttributeValueMemberS{Value: timeToItem(*set.NextMaintenanceDate)}
		names["#next_maintenance_date"] = "next_maintenance_date"
	}

	return r.update(ctx, id, "attribute_exists(#id) AND #status = :from", expr, vals, names)
}

func (r *MaintenanceOrderDynamoRepository) UpdateReminder(ctx context.Context, id string, step *entities.ReminderStep, nextReminderAt *time.Time) (entities.MaintenanceOrder, error) {
	now := timeToItem(time.Now())

	vals := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
		"#step":       "next_reminder_step",
		"#at":         "next_reminder_at",
	}

	var expr string
	if step == nil {
		expr = "SET #updated_at = :updated_at REMOVE #step, #at"
	} else {
		expr = "SET #updated_at = :updated_at, #step = :step, #at = :at"
		vals[":step"] = &types.AttributeValueMemberS{Value: string(*step)}
		vals[":at"] = &types.AttributeValueMemberS{Value: timeToItem(*nextReminderAt)}
	}

	return r.update(ctx, id, "attribute_exists(#id)", expr, vals, names)
}

func (r *MaintenanceOrderDynamoRepository) update(
	ctx context.Context,
	id string,
	conditionExpr string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.MaintenanceOrder, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(conditionExpr),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.MaintenanceOrder{}, nil
		}
		return entities.MaintenanceOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.MaintenanceOrder{}, nil
	}
	var it maintenanceOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.MaintenanceOrder{}, err
	}
	return fromMaintenanceOrderItem(it), nil
}

func toMaintenanceOrderItem(o entities.MaintenanceOrder) maintenanceOrderItem {
	costs := make([]costEntryItem, 0, len(o.Costs))
	for _, c := range o.Costs {
		costs = append(costs, costEntryItem{Name: c.Name, Value: c.Value.String()})
	}
	var step *string
	if o.NextReminderStep != nil {
		s := string(*o.NextReminderStep)
		step = &s
	}
	return maintenanceOrderItem{
		ID:                  o.ID,
		ClientID:            o.ClientID,
		Equipment:           o.Equipment,
		ServiceTitle:        o.ServiceTitle,
		Description:         o.Description,
		Value:               o.Value.String(),
		InternalCost:        optDecimalToItem(o.InternalCost),
		Costs:               costs,
		Status:              string(o.Status),
		OpenedAt:            timeToItem(o.OpenedAt),
		StartDate:           optTimeToItem(o.StartDate),
		DeliveryDate:        optTimeToItem(o.DeliveryDate),
		ClosedAt:            optTimeToItem(o.ClosedAt),
		NextMaintenanceDate: optTimeToItem(o.NextMaintenanceDate),
		NextReminderAt:      optTimeToItem(o.NextReminderAt),
		NextReminderStep:    step,
		CreatedAt:           timeToItem(o.CreatedAt),
		UpdatedAt:           timeToItem(o.UpdatedAt),
	}
}

func fromMaintenanceOrderItem(it maintenanceOrderItem) entities.MaintenanceOrder {
	var costs []entities.CostEntry
	for _, c := range it.Costs {
		costs = append(costs, entities.CostEntry{Name: c.Name, Value: decimalFromItem(c.Value)})
	}
	var step *entities.ReminderStep
	if it.NextReminderStep != nil {
		s := entities.ReminderStep(*it.NextReminderStep)
		step = &s
	}
	return entities.MaintenanceOrder{
		ID:                  it.ID,
		ClientID:            it.ClientID,
		Equipment:           it.Equipment,
		ServiceTitle:        it.ServiceTitle,
		Description:         it.Description,
		Value:               decimalFromItem(it.Value),
		InternalCost:        optDecimalFromItem(it.InternalCost),
		Costs:               costs,
		Status:              entities.MaintenanceStatus(it.Status),
		OpenedAt:            timeFromItem(it.OpenedAt),
		StartDate:           optTimeFromItem(it.StartDate),
		DeliveryDate:        optTimeFromItem(it.DeliveryDate),
		ClosedAt:            optTimeFromItem(it.ClosedAt),
		NextMaintenanceDate: optTimeFromItem(it.NextMaintenanceDate),
		NextReminderAt:      optTimeFromItem(it.NextReminderAt),
		NextReminderStep:    step,
		CreatedAt:           timeFromItem(it.CreatedAt),
		UpdatedAt:           timeFromItem(it.UpdatedAt),
	}
}
