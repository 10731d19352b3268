package database

import (
	"context"
	"fmt"

	postEntity "blogpost/internal/core/post"
	postPort "blogpost/internal/ports/post"

	"gorm.io/gorm"
)

// PostRow is the table layout behind the mysql backend. Seq keeps the
// collection order; post ids are not unique so they cannot be the key.
type PostRow struct {
	Seq     uint   `gorm:"primaryKey;autoIncrement"`
	PostID  int    `gorm:"column:post_id;not null;index"`
	Author  string `gorm:"type:varchar(255)"`
	Title   string `gorm:"type:varchar(255)"`
	Content string `gorm:"type:text"`
}

func (PostRow) TableName() string { return "posts" }

// PostStoreDatabase implements PostStore on top of gorm.
type PostStoreDatabase struct {
	DB *gorm.DB
}

func NewPostStoreDatabase(db *gorm.DB) *PostStoreDatabase {
	return &PostStoreDatabase{DB: db}
}

// Migrate creates the posts table if needed.
func (repo *PostStoreDatabase) Migrate() error {
	return repo.DB.AutoMigrate(&PostRow{})
}

func (repo *PostStoreDatabase) Load(ctx context.Context) ([]*postEntity.Post, error) {
	db := repo.DB.WithContext(ctx)
	if !db.Migrator().HasTable(&PostRow{}) {
		return nil, postPort.ErrStoreMissing
	}

	var rows []PostRow
	if err := db.Order("seq ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}

	posts := make([]*postEntity.Post, 0, len(rows))
	for _, r := range rows {
		posts = append(posts, &postEntity.Post{
			ID:      r.PostID,
			Author:  r.Author,
			Title:   r.Title,
			Content: r.Content,
		})
	}
	return posts, nil
}

// Save replaces every row in one transaction.
func (repo *PostStoreDatabase) Save(ctx context.Context, posts []*postEntity.Post) error {
	return repo.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&PostRow{}).Error; err != nil {
			return fmt.Errorf("clear posts: %w", err)
		}
		if len(posts) == 0 {
			return nil
		}

		rows := make([]PostRow, 0, len(posts))
		for _, p := range posts {
			rows = append(rows, PostRow{
				PostID:  p.ID,
				Author:  p.Author,
				Title:   p.Title,
				Content: p.Content,
			})
		}
		if err := tx.CreateInBatches(rows, 100).Error; err != nil {
			return fmt.Errorf("insert posts: %w", err)
		}
		return nil
	})
}
