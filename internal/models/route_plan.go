package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoutePlan is a named, immutable sequence of route destinations owned by the
// account that created it.
type RoutePlan struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Route       []Destination      `bson:"route" json:"route"`
	DateCreated time.Time          `bson:"date_created" json:"date_created"`
	CreatorID   string             `bson:"creator_id" json:"creator_id"`
}
