package engine

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Tree renders a plan for diagnostic output, e.g.
//
//	.
//	└── block [0:3–2:0] at caret 1:25
//	    └── transform = " rotate(5deg)"
//	        ├── -webkit-transform
//	        │   └── insert @2:0 "  -webkit-transform: rotate(5deg);\n"
//	        └── -moz-transform
//	            └── insert @2:0 "  -moz-transform: rotate(5deg);\n"
func (p Plan) Tree() string {
	printer := tp.New()
	root := printer.AddBranch(fmt.Sprintf("block %s at caret %s", p.Block.Range(), p.Caret))
	if p.Token == "" {
		return printer.String()
	}
	token := root.AddBranch(fmt.Sprintf("%s = %q", p.Token, p.Value))
	for i, pair := range p.Pairs {
		if i >= len(p.Edits) {
			token.AddNode(pair.Token)
			continue
		}
		branch := token.AddBranch(pair.Token)
		e := p.Edits[i]
		if e.IsNoOp() {
			branch.AddNode("up to date")
			continue
		}
		branch.AddNode(e.Translate(p.Block.Start).String())
	}
	return printer.String()
}
