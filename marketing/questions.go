package marketing

import (
	"context"
	"math"
	"sort"

	"aim/go/graphql"
	"aim/go/helpers"
)

// Internal bookkeeping fields stripped from question group candidates.
var questionGroupBookkeeping = map[string]bool{
	"endpointId":       true,
	"questionCriteria": true,
	"region":           true,
	"updatedAt":        true,
	"updatedBy":        true,
	"createdAt":        true,
}

// GetQuestionGroup selects the question group for a place: the place-scoped
// candidates when any exist, otherwise the wildcard-region set, reduced to
// the lowest-weight entry.
func (c *Collection) GetQuestionGroup(ctx context.Context, request QuestionGroupRequest) (map[string]any, error) {
	module := c.marketingModule(request.EndpointId)
	result, err := c.bridge.Execute(ctx, module, "questionGroupList", graphql.Query, map[string]any{
		"placeUuid": request.PlaceUuid,
	})
	if err != nil {
		return nil, err
	}
	if helpers.Traverse(result, []any{"questionGroupList", "total"}, 0.0) == 0 {
		result, err = c.bridge.Execute(ctx, module, "questionGroupList", graphql.Query, map[string]any{
			"region": "*",
		})
		if err != nil {
			return nil, err
		}
	}

	candidates := helpers.Traverse(result, []any{"questionGroupList", "questionGroupList"}, []any(nil))
	questionGroups := make([]map[string]any, 0, len(candidates))
	for _, candidate := range candidates {
		questionGroup, ok := candidate.(map[string]any)
		if !ok {
			continue
		}
		trimmed := map[string]any{}
		for key, value := range questionGroup {
			if value == nil || questionGroupBookkeeping[key] {
				continue
			}
			trimmed[key] = value
		}
		questionGroups = append(questionGroups, helpers.DecamelizeMap(trimmed))
	}
	if len(questionGroups) == 0 {
		return nil, &NotFoundError{Entity: "question group"}
	}

	sort.SliceStable(questionGroups, func(i, j int) bool {
		return questionGroupWeight(questionGroups[i]) < questionGroupWeight(questionGroups[j])
	})
	return questionGroups[0], nil
}

// questionGroupWeight reads a candidate's weight; entries without one sort
// last.
func questionGroupWeight(questionGroup map[string]any) float64 {
	weight, ok := questionGroup["weight"].(float64)
	if !ok {
		return math.MaxFloat64
	}
	return weight
}
