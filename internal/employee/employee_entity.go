package employee

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "employees"

// Employee is the document shape persisted in the employees collection.
// JoiningDate is stored as a timestamp pinned to midnight UTC; only the
// date component is meaningful.
type Employee struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID  string             `bson:"employee_id"`
	Name        string             `bson:"name"`
	Department  string             `bson:"department"`
	Salary      float64            `bson:"salary"`
	JoiningDate time.Time          `bson:"joining_date"`
	Skills      []string           `bson:"skills"`
}

// EmployeeUpdate carries the fields of a partial update. A nil field means
// "leave unchanged"; id and employee_id are not representable here at all.
type EmployeeUpdate struct {
	Name        *string
	Department  *string
	Salary      *float64
	JoiningDate *time.Time
	Skills      *[]string
}

func (u EmployeeUpdate) IsEmpty() bool {
	return u.Name == nil && u.Department == nil && u.Salary == nil &&
		u.JoiningDate == nil && u.Skills == nil
}

// EmployeeIndexes are created at startup. The unique index on employee_id
// is the authoritative guard against concurrent duplicate creates.
var EmployeeIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "employee_id", Value: 1}},
		Options: options.Index().SetName("uniq_employee_id").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "department", Value: 1}},
		Options: options.Index().SetName("idx_department"),
	},
	{
		Keys:    bson.D{{Key: "skills", Value: 1}},
		Options: options.Index().SetName("idx_skills"),
	},
}
