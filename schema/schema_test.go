package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LanceMoe/aerich/schema"
	"github.com/LanceMoe/aerich/schema/field"
)

func TestTableName(t *testing.T) {
	assert.Equal(t, "user", schema.TableName("User"))
	assert.Equal(t, "order_item", schema.TableName("OrderItem"))
	assert.Equal(t, "blog_post", schema.TableName("blog_post"))
}

func TestJoinTable(t *testing.T) {
	assert.Equal(t, "user_groups", schema.JoinTable("user", "group"))
	assert.Equal(t, "blog_categories", schema.JoinTable("blog", "category"))
}

func TestJoinColumn(t *testing.T) {
	assert.Equal(t, "user_id", schema.JoinColumn("users"))
	assert.Equal(t, "group_id", schema.JoinColumn("group"))
	assert.Equal(t, "category_id", schema.JoinColumn("categories"))
}

func TestModelPKColumn(t *testing.T) {
	id := field.Int64("id").Descriptor()
	m := &schema.Model{Name: "User", Table: "user", PK: id, Fields: []*field.Descriptor{id}}
	assert.Equal(t, "id", m.PKColumn())

	m.PK = field.Int64("pk").Column("user_pk").Descriptor()
	assert.Equal(t, "user_pk", m.PKColumn())

	assert.Empty(t, (&schema.Model{}).PKColumn())
}

func TestDescriptor(t *testing.T) {
	id := field.Int64("id").Descriptor()
	m := &schema.Model{Name: "User", Table: "user", PK: id, Fields: []*field.Descriptor{id}}
	d := m.Descriptor()
	require.NotNil(t, d)
	assert.Equal(t, "user", d.Table)
	assert.Equal(t, "id", d.PKColumn())
}
