package mongodb

import (
	"context"
	"errors"

	"KingdomsMap/internal/world/app"
	"KingdomsMap/internal/world/entity"
	"KingdomsMap/internal/world/infra/persistence/codec"
	"KingdomsMap/internal/world/infra/persistence/model"
	"KingdomsMap/modules/kit/errx"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const defaultCollectionName = "snapshot"

// SnapshotArchive 以摘要为 _id 归档原始快照，重复内容只保留首次抓取。
type SnapshotArchive struct {
	coll *mongo.Collection
}

func NewSnapshotArchive(db *mongo.Database) *SnapshotArchive {
	return &SnapshotArchive{
		coll: db.Collection(defaultCollectionName),
	}
}

// EnsureIndexes 建立 fetched_at 倒序索引，供 Latest 使用。
func (r *SnapshotArchive) EnsureIndexes(ctx context.Context) error {
	if r == nil || r.coll == nil {
		return errors.New("mongodb snapshot collection is nil")
	}
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "fetched_at", Value: -1}},
	})
	if err != nil {
		return errx.ErrUnavailable.WithMsg("create snapshot index failed").WithCause(err)
	}
	return nil
}

func (r *SnapshotArchive) Save(ctx context.Context, rec entity.SnapshotRecord) error {
	if r == nil || r.coll == nil {
		return errors.New("mongodb snapshot collection is nil")
	}
	if rec.Digest == "" {
		rec.Digest = codec.Digest(rec.Raw)
	}

	packed, err := codec.Compress(rec.Raw)
	if err != nil {
		return errx.ErrInternal.WithMsg("compress snapshot failed").WithCause(err)
	}
	doc := model.SnapshotRecordToDoc(rec, packed)

	// 已存在相同摘要时不覆盖，保留最早的抓取时间
	_, err = r.coll.UpdateOne(
		ctx,
		bson.M{"_id": doc.Digest},
		bson.M{"$setOnInsert": doc},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return errx.ErrUnavailable.WithMsg("save snapshot failed").
			WithData("digest", doc.Digest).
			WithCause(err)
	}
	return nil
}

func (r *SnapshotArchive) Latest(ctx context.Context) (entity.SnapshotRecord, error) {
	if r == nil || r.coll == nil {
		return entity.SnapshotRecord{}, errors.New("mongodb snapshot collection is nil")
	}

	var doc model.SnapshotDoc
	err := r.coll.FindOne(
		ctx,
		bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "fetched_at", Value: -1}}),
	).Decode(&doc)
	switch {
	case err == nil:
	case errors.Is(err, mongo.ErrNoDocuments):
		return entity.SnapshotRecord{}, app.ErrNoSnapshot
	default:
		return entity.SnapshotRecord{}, errx.ErrUnavailable.WithMsg("load latest snapshot failed").WithCause(err)
	}

	raw, err := codec.Decompress(doc.Data)
	if err != nil {
		return entity.SnapshotRecord{}, errx.ErrInternal.WithMsg("decompress snapshot failed").
			WithData("digest", doc.Digest).
			WithCause(err)
	}
	return entity.SnapshotRecord{
		FetchedAt: doc.FetchedAt,
		Digest:    doc.Digest,
		Raw:       raw,
	}, nil
}
