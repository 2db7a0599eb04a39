package employee

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// maxResults is a hard truncation, not pagination. Known scaling limit.
const maxResults = 100

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Insert(ctx context.Context, empl *Employee) (primitive.ObjectID, error)
	FindByObjectID(ctx context.Context, id primitive.ObjectID) (*Employee, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	FindAll(ctx context.Context, department string) ([]Employee, error)
	FindBySkill(ctx context.Context, skill string) ([]Employee, error)
	AvgSalaryByDepartment(ctx context.Context) ([]DepartmentAvgSalary, error)
	Update(ctx context.Context, employeeID string, update EmployeeUpdate) error
	Delete(ctx context.Context, employeeID string) (int64, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) Repository {
	return &repository{col: col}
}

func (r *repository) Insert(ctx context.Context, empl *Employee) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, empl)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *repository) FindByObjectID(ctx context.Context, id primitive.ObjectID) (*Employee, error) {
	var empl Employee
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&empl)
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	var empl Employee
	err := r.col.FindOne(ctx, bson.M{"employee_id": employeeID}).Decode(&empl)
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindAll(ctx context.Context, department string) ([]Employee, error) {
	filter := bson.M{}
	if department != "" {
		filter["department"] = department
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "joining_date", Value: -1}}).
		SetLimit(maxResults)

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var empls []Employee
	if err := cur.All(ctx, &empls); err != nil {
		return nil, err
	}
	return empls, nil
}

func (r *repository) FindBySkill(ctx context.Context, skill string) ([]Employee, error) {
	// Array field match: the document matches when any element of skills
	// equals the literal string. Case-sensitive, no substring semantics.
	cur, err := r.col.Find(ctx, bson.M{"skills": skill}, options.Find().SetLimit(maxResults))
	if err != nil {
		return nil, err
	}

	var empls []Employee
	if err := cur.All(ctx, &empls); err != nil {
		return nil, err
	}
	return empls, nil
}

func (r *repository) AvgSalaryByDepartment(ctx context.Context) ([]DepartmentAvgSalary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$department"},
			{Key: "avg_salary", Value: bson.D{{Key: "$avg", Value: "$salary"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "department", Value: "$_id"},
			{Key: "avg_salary", Value: 1},
			{Key: "_id", Value: 0},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var result []DepartmentAvgSalary
	if err := cur.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *repository) Update(ctx context.Context, employeeID string, update EmployeeUpdate) error {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Department != nil {
		set["department"] = *update.Department
	}
	if update.Salary != nil {
		set["salary"] = *update.Salary
	}
	if update.JoiningDate != nil {
		set["joining_date"] = *update.JoiningDate
	}
	if update.Skills != nil {
		set["skills"] = *update.Skills
	}
	if len(set) == 0 {
		return nil
	}

	_, err := r.col.UpdateOne(ctx, bson.M{"employee_id": employeeID}, bson.M{"$set": set})
	return err
}

func (r *repository) Delete(ctx context.Context, employeeID string) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
