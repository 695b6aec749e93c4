package repo

import (
	"context"
	"fmt"
	"regexp"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindProduct resolves ref as an ObjectID first and as a slug second.
func (r *mongoRepo) FindProduct(ctx context.Context, ref string) (entities.Product, error) {
	var p Product
	if err := r.findByRef(ctx, productsCollection, ref, &p, entities.ErrProductNotFound); err != nil {
		return entities.Product{}, err
	}
	return ProductToEntity(p), nil
}

func (r *mongoRepo) ProductsByIDs(ctx context.Context, ids []string) ([]entities.Product, error) {
	oids := objectIDs(ids)
	if len(oids) == 0 {
		return []entities.Product{}, nil
	}
	return r.findProducts(ctx, bson.M{"_id": bson.M{"$in": oids}}, nil)
}

func (r *mongoRepo) ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, error) {
	filter := bson.M{}
	if f.CategoryID != "" {
		cid, err := primitive.ObjectIDFromHex(f.CategoryID)
		if err != nil {
			return []entities.Product{}, nil
		}
		filter["category"] = cid
	}
	if f.Search != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
	}
	if f.Featured != nil {
		filter["featured"] = *f.Featured
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.findProducts(ctx, filter, opts)
}

func (r *mongoRepo) findProducts(ctx context.Context, filter any, opts *options.FindOptions) ([]entities.Product, error) {
	cursor, err := r.collection(productsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []Product
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	products := make([]entities.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, ProductToEntity(d))
	}
	return products, nil
}

func (r *mongoRepo) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	doc := ProductFromEntity(p)
	doc.ID = primitive.NilObjectID

	res, err := r.collection(productsCollection).InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return entities.Product{}, entities.ErrSlugTaken
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return ProductToEntity(doc), nil
}

func (r *mongoRepo) UpdateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	doc := ProductFromEntity(p)
	if doc.ID.IsZero() {
		return entities.Product{}, entities.ErrProductNotFound
	}

	res, err := r.collection(productsCollection).ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if mongo.IsDuplicateKeyError(err) {
		return entities.Product{}, entities.ErrSlugTaken
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return entities.Product{}, entities.ErrProductNotFound
	}
	return ProductToEntity(doc), nil
}

func (r *mongoRepo) DeleteProduct(ctx context.Context, productID string) error {
	return r.deleteByID(ctx, productsCollection, productID, entities.ErrProductNotFound)
}

func (r *mongoRepo) ListCategories(ctx context.Context) ([]entities.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection(categoriesCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find categories: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []Category
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	categories := make([]entities.Category, 0, len(docs))
	for _, d := range docs {
		categories = append(categories, CategoryToEntity(d))
	}
	return categories, nil
}

func (r *mongoRepo) FindCategory(ctx context.Context, ref string) (entities.Category, error) {
	var c Category
	if err := r.findByRef(ctx, categoriesCollection, ref, &c, entities.ErrCategoryNotFound); err != nil {
		return entities.Category{}, err
	}
	return CategoryToEntity(c), nil
}

func (r *mongoRepo) CreateCategory(ctx context.Context, c entities.Category) (entities.Category, error) {
	doc := CategoryFromEntity(c)
	doc.ID = primitive.NilObjectID

	res, err := r.collection(categoriesCollection).InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return entities.Category{}, entities.ErrSlugTaken
	}
	if err != nil {
		return entities.Category{}, fmt.Errorf("failed to insert category: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return CategoryToEntity(doc), nil
}

func (r *mongoRepo) UpdateCategory(ctx context.Context, c entities.Category) (entities.Category, error) {
	doc := CategoryFromEntity(c)
	if doc.ID.IsZero() {
		return entities.Category{}, entities.ErrCategoryNotFound
	}

	res, err := r.collection(categoriesCollection).ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if mongo.IsDuplicateKeyError(err) {
		return entities.Category{}, entities.ErrSlugTaken
	}
	if err != nil {
		return entities.Category{}, fmt.Errorf("failed to update category: %w", err)
	}
	if res.MatchedCount == 0 {
		return entities.Category{}, entities.ErrCategoryNotFound
	}
	return CategoryToEntity(doc), nil
}

func (r *mongoRepo) DeleteCategory(ctx context.Context, categoryID string) error {
	return r.deleteByID(ctx, categoriesCollection, categoryID, entities.ErrCategoryNotFound)
}

func (r *mongoRepo) deleteByID(ctx context.Context, coll string, rawID string, notFound error) error {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return notFound
	}
	res, err := r.collection(coll).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", coll, err)
	}
	if res.DeletedCount == 0 {
		return notFound
	}
	return nil
}
