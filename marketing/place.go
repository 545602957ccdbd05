package marketing

import (
	"context"

	"aim/go/graphql"
	"aim/go/helpers"
)

// GetGooglePlaceSetting returns the configured Google Places lookup
// parameters for the calling endpoint.
func (c *Collection) GetGooglePlaceSetting(ctx context.Context, request GooglePlaceSettingRequest) (map[string]any, error) {
	return map[string]any{
		"keyword":        c.settings.Keyword,
		"google_api_key": c.settings.GoogleApiKey,
	}, nil
}

// GetPlace resolves a place by UUID or by location, creating or updating
// the record only when the provided business details differ.
func (c *Collection) GetPlace(ctx context.Context, request PlaceRequest) (map[string]any, error) {
	module := c.marketingModule(request.EndpointId)

	if request.PlaceUuid != "" {
		result, err := c.bridge.Execute(ctx, module, "placeList", graphql.Query, map[string]any{
			"placeUuid": request.PlaceUuid,
		})
		if err != nil {
			return nil, err
		}
		if helpers.Traverse(result, []any{"placeList", "total"}, 0.0) == 0 {
			return nil, &NotFoundError{Entity: "place", Key: request.PlaceUuid}
		}
		place := helpers.Traverse(result, []any{"placeList", "placeList", 0}, map[string]any{})
		return helpers.DecamelizeMap(place), nil
	}

	missing := []string{}
	if request.Region == "" {
		missing = append(missing, "region is required without place_uuid")
	}
	if request.Latitude == nil {
		missing = append(missing, "latitude is required without place_uuid")
	}
	if request.Longitude == nil {
		missing = append(missing, "longitude is required without place_uuid")
	}
	if request.Address == "" {
		missing = append(missing, "address is required without place_uuid")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Tool: ToolGetPlace, Fields: missing}
	}

	result, err := c.bridge.Execute(ctx, module, "placeList", graphql.Query, map[string]any{
		"region":    request.Region,
		"latitude":  *request.Latitude,
		"longitude": *request.Longitude,
		"address":   request.Address,
	})
	if err != nil {
		return nil, err
	}

	var stored map[string]any
	if helpers.Traverse(result, []any{"placeList", "total"}, 0.0) > 0 {
		stored = helpers.Traverse(result, []any{"placeList", "placeList", 0}, map[string]any(nil))
	}
	if stored != nil {
		unchanged, err := placeUnchanged(stored, request)
		if err != nil {
			return nil, err
		}
		if unchanged {
			return helpers.DecamelizeMap(stored), nil
		}
	}

	variables := map[string]any{
		"region":       request.Region,
		"latitude":     *request.Latitude,
		"longitude":    *request.Longitude,
		"address":      request.Address,
		"businessName": request.BusinessName,
		"phoneNumber":  request.PhoneNumber,
		"website":      request.Website,
		"types":        request.Types,
		"updatedBy":    "Admin",
	}
	if placeUuid := stringField(stored, "placeUuid"); placeUuid != "" {
		variables["placeUuid"] = placeUuid
	}
	result, err = c.bridge.Execute(ctx, module, "insertUpdatePlace", graphql.Mutation, variables)
	if err != nil {
		return nil, err
	}
	place := helpers.Traverse(result, []any{"insertUpdatePlace", "place"}, map[string]any{})
	return helpers.DecamelizeMap(place), nil
}

// placeUnchanged reports whether the stored record already matches the
// provided business details. Absent inputs are not compared; types compare
// as an order-insensitive set.
func placeUnchanged(stored map[string]any, request PlaceRequest) (bool, error) {
	comparisons := []struct {
		provided string
		stored   string
	}{
		{request.BusinessName, stringField(stored, "businessName")},
		{request.PhoneNumber, stringField(stored, "phoneNumber")},
		{request.Website, stringField(stored, "website")},
	}
	for _, comparison := range comparisons {
		if comparison.provided == "" {
			continue
		}
		equal, err := helpers.CompareStrings(comparison.stored, comparison.provided)
		if err != nil || !equal {
			return false, err
		}
	}
	if len(request.Types) > 0 {
		equal, err := helpers.CompareStringSets(stringsField(stored, "types"), request.Types)
		if err != nil || !equal {
			return false, err
		}
	}
	return true, nil
}

// stringsField reads a wire list field as a string slice.
func stringsField(record map[string]any, key string) []string {
	items, _ := record[key].([]any)
	values := make([]string, 0, len(items))
	for _, item := range items {
		if value, ok := item.(string); ok {
			values = append(values, value)
		}
	}
	return values
}
