package assets

import (
	"testing"

	"ninedraft/internal/item"
)

func TestRecipeShapesMatchCrafters(t *testing.T) {
	for craftType, recipes := range RecipesFor {
		shape, ok := CrafterShapes[craftType]
		if !ok {
			t.Errorf("craft type %q has recipes but no shape", craftType)
			continue
		}
		for i, r := range recipes {
			if r.Rows() != shape[0] || r.Columns() != shape[1] {
				t.Errorf("%s recipe %d is %dx%d, want %dx%d",
					craftType, i, r.Rows(), r.Columns(), shape[0], shape[1])
			}
			if r.Result.Quantity <= 0 {
				t.Errorf("%s recipe %d has no result quantity", craftType, i)
			}
			if _, err := item.Create(r.Result.ItemID...); err != nil {
				t.Errorf("%s recipe %d result: %v", craftType, i, err)
			}
		}
	}
}

func TestEveryCrafterHasAName(t *testing.T) {
	for craftType := range CrafterShapes {
		if CrafterNames[craftType] == "" {
			t.Errorf("craft type %q has no display name", craftType)
		}
	}
}

func TestFurnaceCooksApples(t *testing.T) {
	if len(FurnaceRecipes) == 0 {
		t.Fatalf("no furnace recipes")
	}
	st, err := FurnaceRecipes[0].Result.Stack()
	if err != nil {
		t.Fatalf("furnace result: %v", err)
	}
	if st.Item().ID() != "cooked_apple" {
		t.Fatalf("furnace result = %q, want cooked_apple", st.Item().ID())
	}
}

func TestStartingStacksResolve(t *testing.T) {
	for _, group := range [][]StartingStack{StartingHotbar, StartingInventory} {
		for _, st := range group {
			if st.Quantity <= 0 {
				t.Errorf("starting stack %+v has no quantity", st)
			}
			if _, err := item.Create(st.ItemID...); err != nil {
				t.Errorf("starting stack %v: %v", st.ItemID, err)
			}
		}
	}
}
