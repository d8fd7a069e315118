package analytics

import (
	"strings"

	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/google/uuid"
)

type categoryNode struct {
	category models.Category
	children []*categoryNode
}

// CategoryTree лес категорий, собранный из плоского списка с parent_id.
// Полные пути считаются один раз при сборке
type CategoryTree struct {
	nodes map[uuid.UUID]*categoryNode
	order []*categoryNode
	roots []*categoryNode
	paths map[uuid.UUID]string
}

func NewCategoryTree(categories []models.Category) *CategoryTree {
	t := &CategoryTree{
		nodes: make(map[uuid.UUID]*categoryNode, len(categories)),
		paths: make(map[uuid.UUID]string, len(categories)),
	}

	for _, c := range categories {
		if _, dup := t.nodes[c.ID]; dup {
			continue
		}
		c.Children = nil
		node := &categoryNode{category: c}
		t.nodes[c.ID] = node
		t.order = append(t.order, node)
	}

	// родитель не найден (сирота) или ссылается сам на себя -> корень
	for _, node := range t.order {
		parentID := node.category.ParentID
		if parentID == nil || *parentID == node.category.ID {
			t.roots = append(t.roots, node)
			continue
		}
		parent, ok := t.nodes[*parentID]
		if !ok {
			t.roots = append(t.roots, node)
			continue
		}
		parent.children = append(parent.children, node)
	}

	visited := make(map[uuid.UUID]bool, len(t.order))
	for _, root := range t.roots {
		t.walk(root, nil, visited)
	}

	// всё что не обошли сверху лежит на цикле, первый такой узел становится корнем
	for _, node := range t.order {
		if visited[node.category.ID] {
			continue
		}
		t.roots = append(t.roots, node)
		t.walk(node, nil, visited)
	}

	return t
}

func (t *CategoryTree) walk(node *categoryNode, prefix []string, visited map[uuid.UUID]bool) {
	if visited[node.category.ID] {
		return
	}
	visited[node.category.ID] = true

	path := append(append([]string(nil), prefix...), node.category.Name)
	t.paths[node.category.ID] = strings.Join(path, models.CategoryPathSeparator)

	for _, child := range node.children {
		t.walk(child, path, visited)
	}
}

// Path полный путь категории от корня до листа, UncategorizedLabel если id пустой или не найден
func (t *CategoryTree) Path(id *uuid.UUID) string {
	if t == nil || id == nil {
		return models.UncategorizedLabel
	}
	if path, ok := t.paths[*id]; ok {
		return path
	}
	return models.UncategorizedLabel
}

func (t *CategoryTree) Contains(id uuid.UUID) bool {
	_, ok := t.nodes[id]
	return ok
}

// WouldCycle проверяет, создаст ли назначение parentID родителем id цикл
func (t *CategoryTree) WouldCycle(id, parentID uuid.UUID) bool {
	if id == parentID {
		return true
	}
	seen := make(map[uuid.UUID]bool)
	cur := parentID
	for {
		if cur == id {
			return true
		}
		if seen[cur] {
			return false
		}
		seen[cur] = true
		node, ok := t.nodes[cur]
		if !ok || node.category.ParentID == nil {
			return false
		}
		cur = *node.category.ParentID
	}
}

// Forest дерево для отображения: корни с заполненными Children и FullPath
func (t *CategoryTree) Forest() []models.Category {
	out := make([]models.Category, 0, len(t.roots))
	emitted := make(map[uuid.UUID]bool, len(t.order))
	for _, root := range t.roots {
		if c, ok := t.materialize(root, emitted); ok {
			out = append(out, c)
		}
	}
	return out
}

func (t *CategoryTree) materialize(node *categoryNode, emitted map[uuid.UUID]bool) (models.Category, bool) {
	if emitted[node.category.ID] {
		return models.Category{}, false
	}
	emitted[node.category.ID] = true

	c := node.category
	c.FullPath = t.paths[c.ID]
	for _, child := range node.children {
		if cc, ok := t.materialize(child, emitted); ok {
			c.Children = append(c.Children, cc)
		}
	}
	return c, true
}

// Flat исходный список категорий в порядке поступления с заполненным FullPath
func (t *CategoryTree) Flat() []models.Category {
	out := make([]models.Category, 0, len(t.order))
	for _, node := range t.order {
		c := node.category
		c.FullPath = t.paths[c.ID]
		out = append(out, c)
	}
	return out
}
