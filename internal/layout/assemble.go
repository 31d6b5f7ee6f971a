package layout

import (
	"context"
	"fmt"

	"github.com/conneroisu/viewforge/internal/description"
	"github.com/conneroisu/viewforge/internal/engine"
	verrors "github.com/conneroisu/viewforge/internal/errors"
	"github.com/conneroisu/viewforge/internal/view"
)

// Build creates a view tree from doc. Nodes that fail to build are skipped
// together with their children and reported in the returned collector; the
// rest of the document is still built.
func Build(ctx context.Context, e *engine.Engine, doc *Document, desc description.Description) ([]view.View, *verrors.Collector) {
	issues := verrors.NewCollector()
	roots := make([]view.View, 0, len(doc.Views))
	for i := range doc.Views {
		if v := buildNode(ctx, e, &doc.Views[i], nodePath("views", i), desc, issues); v != nil {
			roots = append(roots, v)
		}
	}
	return roots, issues
}

func buildNode(ctx context.Context, e *engine.Engine, node *Node, path string, desc description.Description, issues *verrors.Collector) view.View {
	v, err := e.Build(ctx, node.Class, node.Attributes, desc)
	if err != nil {
		severity := verrors.ErrorSeverityError
		if v != nil {
			severity = verrors.ErrorSeverityWarning
		}
		issues.Add(verrors.BuildIssue{
			Path:     path,
			Class:    node.Class,
			Message:  "build failed",
			Severity: severity,
			Cause:    err,
		})
		if v == nil {
			return nil
		}
	}
	attachChildren(ctx, e, v, node, path, desc, issues)
	return v
}

func attachChildren(ctx context.Context, e *engine.Engine, v view.View, node *Node, path string, desc description.Description, issues *verrors.Collector) {
	if len(node.Children) == 0 {
		return
	}
	container, ok := v.(view.ContainerView)
	if !ok {
		issues.Add(verrors.BuildIssue{
			Path:     path,
			Class:    node.Class,
			Message:  fmt.Sprintf("%d children ignored: not a container", len(node.Children)),
			Severity: verrors.ErrorSeverityWarning,
		})
		return
	}
	c := container.ContainerState()
	for i := range node.Children {
		if child := buildNode(ctx, e, &node.Children[i], nodePath(path+".children", i), desc, issues); child != nil {
			c.AddChild(child)
		}
	}
}

// Describe reads a view tree back into a document.
func Describe(ctx context.Context, e *engine.Engine, roots []view.View, desc description.Description) (*Document, error) {
	doc := &Document{Views: make([]Node, 0, len(roots))}
	for _, v := range roots {
		node, err := describeNode(ctx, e, v, desc)
		if err != nil {
			return nil, err
		}
		doc.Views = append(doc.Views, node)
	}
	return doc, nil
}

func describeNode(ctx context.Context, e *engine.Engine, v view.View, desc description.Description) (Node, error) {
	attrs, err := e.DescribeView(ctx, v, desc)
	if err != nil {
		return Node{}, err
	}
	node := Node{
		Class:      v.ViewBase().Class(),
		Attributes: attrs.Without(engine.ClassAttribute),
	}
	if container, ok := v.(view.ContainerView); ok {
		for _, child := range container.ContainerState().Children() {
			childNode, err := describeNode(ctx, e, child, desc)
			if err != nil {
				return Node{}, err
			}
			node.Children = append(node.Children, childNode)
		}
	}
	return node, nil
}

// Reapply brings an existing tree in line with an edited document. Nodes are
// paired with views in order, skipping nodes that fail to build just as
// Build does. Nodes whose class is unchanged are patched in place; changed
// or added nodes are rebuilt and surplus views are dropped. It returns the
// resulting roots.
func Reapply(ctx context.Context, e *engine.Engine, roots []view.View, doc *Document, desc description.Description) ([]view.View, *verrors.Collector) {
	issues := verrors.NewCollector()
	out := make([]view.View, 0, len(doc.Views))
	for i := range doc.Views {
		var existing view.View
		if len(out) < len(roots) {
			existing = roots[len(out)]
		}
		if v := reapplyNode(ctx, e, existing, &doc.Views[i], nodePath("views", i), desc, issues); v != nil {
			out = append(out, v)
		}
	}
	return out, issues
}

func reapplyNode(ctx context.Context, e *engine.Engine, existing view.View, node *Node, path string, desc description.Description, issues *verrors.Collector) view.View {
	if existing == nil || existing.ViewBase().Class() != node.Class {
		return buildNode(ctx, e, node, path, desc, issues)
	}
	if !e.ApplyPatch(ctx, existing, node.Class, node.Attributes, desc) {
		issues.Add(verrors.BuildIssue{
			Path:     path,
			Class:    node.Class,
			Message:  "patch was not fully applied",
			Severity: verrors.ErrorSeverityWarning,
		})
	}

	container, ok := existing.(view.ContainerView)
	if !ok {
		attachChildren(ctx, e, existing, node, path, desc, issues)
		return existing
	}
	c := container.ContainerState()
	children := c.Children()
	kept := 0
	for i := range node.Children {
		var current view.View
		if kept < len(children) {
			current = children[kept]
		}
		child := reapplyNode(ctx, e, current, &node.Children[i], nodePath(path+".children", i), desc, issues)
		if child == nil {
			continue
		}
		if kept < len(children) {
			c.ReplaceChild(kept, child)
		} else {
			c.AddChild(child)
		}
		kept++
	}
	if kept < len(children) {
		c.TruncateChildren(kept)
	}
	return existing
}

func nodePath(prefix string, i int) string {
	return fmt.Sprintf("%s[%d]", prefix, i)
}
