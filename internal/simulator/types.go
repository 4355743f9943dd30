package simulator

import (
	"fmt"
	"log"

	"github.com/xitongsys/parquet-go/schema"
)

const (
	TopicSession           = "session_events"
	TopicOrderQueue        = "order_queue_events"
	TopicOrderStatus       = "order_status_events"
	TopicDeliveryCompleted = "delivery_completed_events"
	TopicDeliveryFailed    = "delivery_failed_events"
	TopicScore             = "score_events"
)

// Topics lists every topic an output may be asked to write.
var Topics = []string{
	TopicSession,
	TopicOrderQueue,
	TopicOrderStatus,
	TopicDeliveryCompleted,
	TopicDeliveryFailed,
	TopicScore,
}

// Records are flat so the parquet writer can derive a schema from the
// struct tags without nested groups.

// SessionEvent represents a session starting, pausing, resuming or stopping
type SessionEvent struct {
	Timestamp        int64   `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	EventType        string  `json:"eventType" parquet:"name=eventType,type=BYTE_ARRAY,convertedtype=UTF8"`
	SessionID        string  `json:"sessionId" parquet:"name=sessionId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Earnings         float64 `json:"earnings" parquet:"name=earnings,type=DOUBLE"`
	TotalDeliveries  int64   `json:"totalDeliveries" parquet:"name=totalDeliveries,type=INT64"`
	FailedDeliveries int64   `json:"failedDeliveries" parquet:"name=failedDeliveries,type=INT64"`
	BestStreak       int64   `json:"bestStreak" parquet:"name=bestStreak,type=INT64"`
}

// OrderQueueEvent represents the pending queue after a change
type OrderQueueEvent struct {
	Timestamp    int64   `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	EventType    string  `json:"eventType" parquet:"name=eventType,type=BYTE_ARRAY,convertedtype=UTF8"`
	SessionID    string  `json:"sessionId" parquet:"name=sessionId,type=BYTE_ARRAY,convertedtype=UTF8"`
	QueueLength  int64   `json:"queueLength" parquet:"name=queueLength,type=INT64"`
	OrderIDs     string  `json:"orderIds" parquet:"name=orderIds,type=BYTE_ARRAY,convertedtype=UTF8"`
	TotalPayable float64 `json:"totalPayable" parquet:"name=totalPayable,type=DOUBLE"`
}

// OrderStatusEvent represents one order lifecycle transition
type OrderStatusEvent struct {
	Timestamp        int64   `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	EventType        string  `json:"eventType" parquet:"name=eventType,type=BYTE_ARRAY,convertedtype=UTF8"`
	SessionID        string  `json:"sessionId" parquet:"name=sessionId,type=BYTE_ARRAY,convertedtype=UTF8"`
	OrderID          string  `json:"orderId" parquet:"name=orderId,type=BYTE_ARRAY,convertedtype=UTF8"`
	RestaurantID     string  `json:"restaurantId" parquet:"name=restaurantId,type=BYTE_ARRAY,convertedtype=UTF8"`
	RestaurantName   string  `json:"restaurantName" parquet:"name=restaurantName,type=BYTE_ARRAY,convertedtype=UTF8"`
	FromStatus       string  `json:"fromStatus" parquet:"name=fromStatus,type=BYTE_ARRAY,convertedtype=UTF8"`
	ToStatus         string  `json:"toStatus" parquet:"name=toStatus,type=BYTE_ARRAY,convertedtype=UTF8"`
	Distance         float64 `json:"distance" parquet:"name=distance,type=DOUBLE"`
	TimeLimitSeconds int64   `json:"timeLimitSeconds" parquet:"name=timeLimitSeconds,type=INT64"`
}

// DeliveryCompletedEvent represents a delivered order and what it paid
type DeliveryCompletedEvent struct {
	Timestamp       int64   `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	EventType       string  `json:"eventType" parquet:"name=eventType,type=BYTE_ARRAY,convertedtype=UTF8"`
	SessionID       string  `json:"sessionId" parquet:"name=sessionId,type=BYTE_ARRAY,convertedtype=UTF8"`
	OrderID         string  `json:"orderId" parquet:"name=orderId,type=BYTE_ARRAY,convertedtype=UTF8"`
	RestaurantID    string  `json:"restaurantId" parquet:"name=restaurantId,type=BYTE_ARRAY,convertedtype=UTF8"`
	CustomerName    string  `json:"customerName" parquet:"name=customerName,type=BYTE_ARRAY,convertedtype=UTF8"`
	DeliveryAddress string  `json:"deliveryAddress" parquet:"name=deliveryAddress,type=BYTE_ARRAY,convertedtype=UTF8"`
	DeliveryLat     float64 `json:"deliveryLat" parquet:"name=deliveryLat,type=DOUBLE"`
	DeliveryLon     float64 `json:"deliveryLon" parquet:"name=deliveryLon,type=DOUBLE"`
	Distance        float64 `json:"distance" parquet:"name=distance,type=DOUBLE"`
	BasePay         float64 `json:"basePay" parquet:"name=basePay,type=DOUBLE"`
	DistancePay     float64 `json:"distancePay" parquet:"name=distancePay,type=DOUBLE"`
	Tip             float64 `json:"tip" parquet:"name=tip,type=DOUBLE"`
	TotalPay        float64 `json:"totalPay" parquet:"name=totalPay,type=DOUBLE"`
	Rating          string  `json:"rating" parquet:"name=rating,type=BYTE_ARRAY,convertedtype=UTF8"`
	DurationSeconds float64 `json:"durationSeconds" parquet:"name=durationSeconds,type=DOUBLE"`
}

// DeliveryFailedEvent represents an order lost to a timeout or a cancel
type DeliveryFailedEvent struct {
	Timestamp      int64   `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	EventType      string  `json:"eventType" parquet:"name=eventType,type=BYTE_ARRAY,convertedtype=UTF8"`
	SessionID      string  `json:"sessionId" parquet:"name=sessionId,type=BYTE_ARRAY,convertedtype=UTF8"`
	OrderID        string  `json:"orderId" parquet:"name=orderId,type=BYTE_ARRAY,convertedtype=UTF8"`
	RestaurantID   string  `json:"restaurantId" parquet:"name=restaurantId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Reason         string  `json:"reason" parquet:"name=reason,type=BYTE_ARRAY,convertedtype=UTF8"`
	PickedUp       bool    `json:"pickedUp" parquet:"name=pickedUp,type=BOOLEAN"`
	ElapsedSeconds float64 `json:"elapsedSeconds" parquet:"name=elapsedSeconds,type=DOUBLE"`
}

// ScoreEvent represents the running score after a delivery result
type ScoreEvent struct {
	Timestamp        int64   `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	EventType        string  `json:"eventType" parquet:"name=eventType,type=BYTE_ARRAY,convertedtype=UTF8"`
	SessionID        string  `json:"sessionId" parquet:"name=sessionId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Earnings         float64 `json:"earnings" parquet:"name=earnings,type=DOUBLE"`
	TotalDeliveries  int64   `json:"totalDeliveries" parquet:"name=totalDeliveries,type=INT64"`
	FailedDeliveries int64   `json:"failedDeliveries" parquet:"name=failedDeliveries,type=INT64"`
	Streak           int64   `json:"streak" parquet:"name=streak,type=INT64"`
	BestStreak       int64   `json:"bestStreak" parquet:"name=bestStreak,type=INT64"`
}

// newRecord returns an empty record for topic to decode a message into.
func newRecord(topic string) (interface{}, error) {
	switch topic {
	case TopicSession:
		return new(SessionEvent), nil
	case TopicOrderQueue:
		return new(OrderQueueEvent), nil
	case TopicOrderStatus:
		return new(OrderStatusEvent), nil
	case TopicDeliveryCompleted:
		return new(DeliveryCompletedEvent), nil
	case TopicDeliveryFailed:
		return new(DeliveryFailedEvent), nil
	case TopicScore:
		return new(ScoreEvent), nil
	}
	return nil, fmt.Errorf("unknown event type: %s", topic)
}

func GetSchema(topic string) (*schema.SchemaHandler, error) {
	record, err := newRecord(topic)
	if err != nil {
		return nil, err
	}
	sh, err := schema.NewSchemaHandlerFromStruct(record)
	if err != nil {
		log.Printf("Error creating schema for %s: %v", topic, err)
		return nil, fmt.Errorf("error creating schema for %s: %w", topic, err)
	}
	return sh, nil
}
