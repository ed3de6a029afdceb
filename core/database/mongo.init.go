package database

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"sentiment_dashboard/core/global"
	"sentiment_dashboard/core/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureDatabaseAndCollections đảm bảo database và các collection trong
// global.MongoDB_ColNames tồn tại. Collection được tạo rỗng; MongoDB tạo database
// cùng collection đầu tiên.
func EnsureDatabaseAndCollections(client *mongo.Client) error {
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	log := logger.WithModule("database").WithField("db", dbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := client.Database(dbName)
	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	if len(existing) == 0 {
		log.Info("Database is empty, collections will be created")
	}

	for _, name := range CollectionNames(global.MongoDB_ColNames) {
		if contains(existing, name) {
			continue
		}
		log.WithField("collection", name).Info("Collection chưa tồn tại, tạo mới")
		if err := db.CreateCollection(ctx, name); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", name, err)
		}
	}

	log.Info("Database and collections are ensured")
	return nil
}

// CollectionNames liệt kê các giá trị string của struct tên collection.
func CollectionNames(names global.MongoDB_CollectionNames) []string {
	v := reflect.ValueOf(names)
	out := make([]string, 0, v.NumField())
	for i := 0; i < v.NumField(); i++ {
		if s := v.Field(i).String(); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// IndexSpec là một index được suy ra từ tag `index` của model.
type IndexSpec struct {
	Name    string
	Keys    bson.D
	Options *options.IndexOptions
}

// parseOrder: Trích xuất thứ tự sắp xếp từ tag (1 hoặc -1)
func parseOrder(entry map[string]string) int {
	if entry["order"] == "-1" {
		return -1
	}
	return 1
}

// parseIndexTag tách tag theo ';' (nhiều index) và ',' (các option của một index).
// Ví dụ: `index:"unique,sparse"` hoặc `index:"compound:review_scope,order:-1;single"`.
func parseIndexTag(tag string) []map[string]string {
	result := []map[string]string{}
	for _, part := range strings.Split(tag, ";") {
		entry := map[string]string{}
		for _, sub := range strings.Split(part, ",") {
			sub = strings.TrimSpace(sub)
			if sub == "" {
				continue
			}
			kv := strings.SplitN(sub, ":", 2)
			if len(kv) == 2 {
				entry[kv[0]] = kv[1]
			} else {
				entry[kv[0]] = ""
			}
		}
		if len(entry) > 0 {
			result = append(result, entry)
		}
	}
	return result
}

// BuildIndexSpecs đọc tag `index` trên các field của model.
// Option hỗ trợ: single, unique, sparse, text, ttl:<giây>, order:-1 và
// compound:<tên> (tên compound chứa "_unique" thì index là unique).
func BuildIndexSpecs(model interface{}) ([]IndexSpec, error) {
	modelType := reflect.TypeOf(model)
	if modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}

	var specs []IndexSpec
	compound := map[string]bson.D{}
	compoundSparse := map[string]bool{}

	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		tag, ok := field.Tag.Lookup("index")
		if !ok {
			continue
		}
		bsonField := strings.Split(field.Tag.Get("bson"), ",")[0]
		if bsonField == "" || bsonField == "-" {
			continue
		}

		for _, cfg := range parseIndexTag(tag) {
			_, sparse := cfg["sparse"]

			if _, ok := cfg["text"]; ok {
				name := bsonField + "_text"
				specs = append(specs, IndexSpec{name, bson.D{{Key: bsonField, Value: "text"}}, options.Index().SetName(name)})
			}
			if _, ok := cfg["single"]; ok {
				name := bsonField + "_single"
				specs = append(specs, IndexSpec{name, bson.D{{Key: bsonField, Value: parseOrder(cfg)}}, options.Index().SetName(name)})
			}
			if _, ok := cfg["unique"]; ok {
				name := bsonField + "_unique"
				opts := options.Index().SetName(name).SetUnique(true)
				if sparse {
					opts.SetSparse(true)
				}
				specs = append(specs, IndexSpec{name, bson.D{{Key: bsonField, Value: 1}}, opts})
			}
			if raw, ok := cfg["ttl"]; ok {
				ttl, err := strconv.Atoi(raw)
				if err != nil {
					return nil, fmt.Errorf("TTL không hợp lệ trên field %s: %w", bsonField, err)
				}
				name := bsonField + "_ttl"
				specs = append(specs, IndexSpec{name, bson.D{{Key: bsonField, Value: 1}}, options.Index().SetName(name).SetExpireAfterSeconds(int32(ttl))})
			}
			if group, ok := cfg["compound"]; ok {
				compound[group] = append(compound[group], bson.E{Key: bsonField, Value: parseOrder(cfg)})
				if sparse {
					compoundSparse[group] = true
				}
			}
		}
	}

	groups := make([]string, 0, len(compound))
	for g := range compound {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	for _, g := range groups {
		opts := options.Index().SetName(g)
		if strings.Contains(g, "_unique") {
			opts.SetUnique(true)
		}
		if compoundSparse[g] {
			opts.SetSparse(true)
		}
		specs = append(specs, IndexSpec{g, compound[g], opts})
	}
	return specs, nil
}

func compareIndex(existingIndex bson.M, keys bson.D, opts *options.IndexOptions) bool {
	existingKeys, ok := existingIndex["key"].(bson.M)
	if !ok || len(existingKeys) != len(keys) {
		return false
	}

	for _, key := range keys {
		existingValue, exists := existingKeys[key.Key]
		if !exists {
			return false
		}
		newVal, isInt := key.Value.(int)
		if !isInt {
			if existingValue != key.Value {
				return false
			}
			continue
		}
		switch ev := existingValue.(type) {
		case int32:
			if int(ev) != newVal {
				return false
			}
		case int64:
			if int(ev) != newVal {
				return false
			}
		case float64:
			if int(ev) != newVal {
				return false
			}
		default:
			return false
		}
	}

	unique, _ := existingIndex["unique"].(bool)
	wantUnique := opts.Unique != nil && *opts.Unique
	if unique != wantUnique {
		return false
	}

	if ttl, ok := existingIndex["expireAfterSeconds"].(int32); ok && opts.ExpireAfterSeconds != nil {
		if ttl != *opts.ExpireAfterSeconds {
			return false
		}
	}
	return true
}

// CreateIndexes tạo (hoặc thay thế khi cấu hình lệch) các index khai báo trên model.
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model interface{}) error {
	log := logger.WithModuleAndCollection("database", collection.Name())

	specs, err := BuildIndexSpecs(model)
	if err != nil {
		return err
	}

	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("không thể lấy danh sách index: %w", err)
	}
	defer cursor.Close(ctx)

	existing := map[string]bson.M{}
	for cursor.Next(ctx) {
		var info bson.M
		if err := cursor.Decode(&info); err != nil {
			return fmt.Errorf("không thể giải mã thông tin index: %w", err)
		}
		if name, ok := info["name"].(string); ok {
			existing[name] = info
		}
	}

	for _, spec := range specs {
		if current, ok := existing[spec.Name]; ok {
			if compareIndex(current, spec.Keys, spec.Options) {
				log.WithField("index", spec.Name).Debug("Index đã tồn tại và đúng cấu hình")
				continue
			}
			if _, err := collection.Indexes().DropOne(ctx, spec.Name); err != nil {
				return fmt.Errorf("không thể xóa index %s: %w", spec.Name, err)
			}
			log.WithField("index", spec.Name).Info("Đã xóa index cũ")
		}
		if _, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: spec.Keys, Options: spec.Options}); err != nil {
			return fmt.Errorf("không thể tạo index %s: %w", spec.Name, err)
		}
		log.WithField("index", spec.Name).Info("Đã tạo index")
	}
	return nil
}
