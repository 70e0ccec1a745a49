package category

import (
	"context"
	"sync"
)

// Navigator tracks where the admin is in the category tree. The zero value is
// at the root.
type Navigator struct {
	parent *int
	crumbs []Crumb
}

// Parent is the numeric id of the category being browsed, nil at the root.
func (n *Navigator) Parent() *int {
	if n.parent == nil {
		return nil
	}
	p := *n.parent
	return &p
}

func (n *Navigator) Crumbs() []Crumb {
	return append([]Crumb(nil), n.crumbs...)
}

// Enter descends into c. Leaf categories cannot be entered.
func (n *Navigator) Enter(c Category) error {
	if !c.HasChild {
		return ErrNoChildren
	}
	num := c.Num
	n.parent = &num
	n.crumbs = append(n.crumbs, Crumb{Num: c.Num, Name: c.Name})
	return nil
}

// Jump truncates the trail to crumbs[0..i] and browses crumbs[i].
// An index of -1 is the root.
func (n *Navigator) Jump(i int) error {
	if i == -1 {
		n.Root()
		return nil
	}
	if i < 0 || i >= len(n.crumbs) {
		return ErrCrumbOutOfRange
	}
	n.crumbs = n.crumbs[:i+1]
	num := n.crumbs[i].Num
	n.parent = &num
	return nil
}

func (n *Navigator) Root() {
	n.parent = nil
	n.crumbs = nil
}

// Visible filters all down to the children of the current parent.
func (n *Navigator) Visible(all []Category) []Category {
	return Children(all, n.parent)
}

// BrowserState is a copy of a Browser for rendering.
type BrowserState struct {
	All     []Category
	Visible []Category
	Crumbs  []Crumb
	Parent  *int
	Loaded  bool
	Err     error
}

// Browser is the categories page: the full tree fetched once, navigated
// locally and kept in sync with creates and deletes.
type Browser struct {
	svc Service

	mu     sync.Mutex
	seq    uint64
	all    []Category
	nav    Navigator
	loaded bool
	err    error
}

func NewBrowser(svc Service) *Browser {
	return &Browser{svc: svc}
}

func (b *Browser) Load(ctx context.Context) error {
	b.mu.Lock()
	b.seq++
	token := b.seq
	b.mu.Unlock()

	all, err := b.svc.GetCategories(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()

	if token != b.seq {
		return nil
	}
	if err != nil {
		b.err = err
		return err
	}
	b.all = all
	b.loaded = true
	b.err = nil
	return nil
}

// Enter browses the children of the category with numeric id num.
func (b *Browser) Enter(num int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := FindByNum(b.all, num)
	if !ok {
		return ErrCategoryNotFound
	}
	return b.nav.Enter(c)
}

func (b *Browser) Jump(i int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.nav.Jump(i)
}

func (b *Browser) Root() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nav.Root()
}

// Create adds a category under the current parent and flags that parent as
// having children.
func (b *Browser) Create(ctx context.Context, input NewCategory) (*Category, error) {
	b.mu.Lock()
	input.ParentID = b.nav.Parent()
	b.mu.Unlock()

	created, err := b.svc.AddCategory(ctx, input)
	if err != nil {
		b.mu.Lock()
		b.err = err
		b.mu.Unlock()
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.all = append(b.all, *created)
	if input.ParentID != nil {
		for i := range b.all {
			if b.all[i].Num == *input.ParentID {
				b.all[i].HasChild = true
			}
		}
	}
	return created, nil
}

func (b *Browser) Delete(ctx context.Context, id string) error {
	if err := b.svc.DeleteCategory(ctx, id); err != nil {
		b.mu.Lock()
		b.err = err
		b.mu.Unlock()
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	kept := b.all[:0:0]
	for _, c := range b.all {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	b.all = kept
	return nil
}

func (b *Browser) Snapshot() BrowserState {
	b.mu.Lock()
	defer b.mu.Unlock()

	return BrowserState{
		All:     append([]Category(nil), b.all...),
		Visible: b.nav.Visible(b.all),
		Crumbs:  b.nav.Crumbs(),
		Parent:  b.nav.Parent(),
		Loaded:  b.loaded,
		Err:     b.err,
	}
}
