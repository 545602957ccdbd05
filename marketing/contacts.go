package marketing

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"aim/go/graphql"
	"aim/go/helpers"
)

// Named fields of the data_collect dataset; everything else rides along in
// the opaque data payload.
var datasetFields = []string{"place_uuid", "email", "first_name", "last_name"}

// GetContactProfile resolves a contact profile by email, creating or
// updating it only when the provided name or place differs from the stored
// record.
func (c *Collection) GetContactProfile(ctx context.Context, request ContactProfileRequest) (map[string]any, error) {
	module := c.marketingModule(request.EndpointId)
	lookup := map[string]any{"email": request.Contact.Email}
	if request.Place.PlaceUuid != "" {
		lookup["placeUuid"] = request.Place.PlaceUuid
	}
	stored, err := c.lookupContactProfile(ctx, module, lookup)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		unchanged, err := contactProfileUnchanged(stored, request)
		if err != nil {
			return nil, err
		}
		if unchanged {
			return helpers.DecamelizeMap(stored), nil
		}
	}

	variables := map[string]any{
		"email":     request.Contact.Email,
		"firstName": request.Contact.FirstName,
		"lastName":  request.Contact.LastName,
		"placeUuid": request.Place.PlaceUuid,
		"updatedBy": "Admin",
	}
	if stored == nil {
		variables["data"] = map[string]any{"sales_rep": c.settings.SalesRep}
	} else if contactUuid := stringField(stored, "contactUuid"); contactUuid != "" {
		variables["contactUuid"] = contactUuid
	}
	if c.settings.ContactProfileOmitEmpty {
		variables = omitEmpty(variables)
	}
	result, err := c.bridge.Execute(ctx, module, "insertUpdateContactProfile", graphql.Mutation, variables)
	if err != nil {
		return nil, err
	}
	profile := helpers.Traverse(result, []any{"insertUpdateContactProfile", "contactProfile"}, map[string]any{})
	return helpers.DecamelizeMap(profile), nil
}

// DataCollect records a collected dataset against a contact profile. The
// dataset arrives as a JSON string; nil values are dropped and list values
// joined into comma-separated strings before storage.
func (c *Collection) DataCollect(ctx context.Context, request DataCollectRequest) (map[string]any, error) {
	var dataset map[string]any
	if err := json.Unmarshal([]byte(request.DataCollectDataset), &dataset); err != nil {
		return nil, &ValidationError{
			Tool:   ToolDataCollect,
			Fields: []string{fmt.Sprintf("data_collect_dataset is not valid JSON: %v", err)},
		}
	}
	data := map[string]any{}
	for key, value := range dataset {
		switch typed := value.(type) {
		case nil:
			continue
		case []any:
			parts := make([]string, 0, len(typed))
			for _, item := range typed {
				parts = append(parts, fmt.Sprint(item))
			}
			data[key] = strings.Join(parts, ", ")
		default:
			data[key] = value
		}
	}

	fields := map[string]any{}
	missing := []string{}
	for _, key := range datasetFields {
		value, found := data[key]
		if !found {
			missing = append(missing, fmt.Sprintf("data_collect_dataset is missing %s", key))
			continue
		}
		delete(data, key)
		fields[key] = value
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Tool: ToolDataCollect, Fields: missing}
	}
	data["sales_rep"] = c.settings.SalesRep

	module := c.marketingModule(request.EndpointId)
	stored, err := c.lookupContactProfile(ctx, module, map[string]any{
		"placeUuid": fields["place_uuid"],
		"email":     fields["email"],
	})
	if err != nil {
		return nil, err
	}

	variables := map[string]any{
		"placeUuid": fields["place_uuid"],
		"email":     fields["email"],
		"firstName": fields["first_name"],
		"lastName":  fields["last_name"],
		"data":      data,
		"updatedBy": "Admin",
	}
	if contactUuid := stringField(stored, "contactUuid"); contactUuid != "" {
		variables["contactUuid"] = contactUuid
	}
	result, err := c.bridge.Execute(ctx, module, "insertUpdateContactProfile", graphql.Mutation, variables)
	if err != nil {
		return nil, err
	}
	profile := helpers.Traverse(result, []any{"insertUpdateContactProfile", "contactProfile"}, map[string]any{})
	return map[string]any{
		"contact_uuid":    stringField(profile, "contactUuid"),
		"sales_rep":       c.settings.SalesRep,
		"sales_rep_email": c.settings.SalesRepEmail,
	}, nil
}

// SubmitRequest files a contact request. Pure create, no existence check.
func (c *Collection) SubmitRequest(ctx context.Context, request RequestSubmission) (map[string]any, error) {
	module := c.marketingModule(request.EndpointId)
	variables := map[string]any{
		"placeUuid":     request.PlaceUuid,
		"contactUuid":   request.ContactUuid,
		"requestTitle":  request.RequestTitle,
		"requestDetail": request.RequestDetail,
		"updatedBy":     "Admin",
	}
	result, err := c.bridge.Execute(ctx, module, "insertUpdateContactRequest", graphql.Mutation, variables)
	if err != nil {
		return nil, err
	}
	contactRequest := helpers.Traverse(result, []any{"insertUpdateContactRequest", "contactRequest"}, map[string]any{})
	return map[string]any{"request_uuid": stringField(contactRequest, "requestUuid")}, nil
}

// lookupContactProfile returns the first stored profile matching variables,
// or nil when none exists.
func (c *Collection) lookupContactProfile(ctx context.Context, module graphql.Module, variables map[string]any) (map[string]any, error) {
	result, err := c.bridge.Execute(ctx, module, "contactProfileList", graphql.Query, variables)
	if err != nil {
		return nil, err
	}
	if helpers.Traverse(result, []any{"contactProfileList", "total"}, 0.0) == 0 {
		return nil, nil
	}
	return helpers.Traverse(result, []any{"contactProfileList", "contactProfileList", 0}, map[string]any(nil)), nil
}

// contactProfileUnchanged reports whether the stored record already matches
// the request. Fields the caller did not provide are not compared.
func contactProfileUnchanged(stored map[string]any, request ContactProfileRequest) (bool, error) {
	if request.Contact.FirstName != "" {
		equal, err := helpers.CompareStrings(stringField(stored, "firstName"), request.Contact.FirstName)
		if err != nil || !equal {
			return false, err
		}
	}
	if request.Contact.LastName != "" {
		equal, err := helpers.CompareStrings(stringField(stored, "lastName"), request.Contact.LastName)
		if err != nil || !equal {
			return false, err
		}
	}
	if request.Place.PlaceUuid != "" && stringField(stored, "placeUuid") != request.Place.PlaceUuid {
		return false, nil
	}
	return true, nil
}

// omitEmpty drops empty-string, nil and empty-list values so the backing
// store treats them as absent rather than null.
func omitEmpty(variables map[string]any) map[string]any {
	cleaned := make(map[string]any, len(variables))
	for key, value := range variables {
		switch typed := value.(type) {
		case nil:
			continue
		case string:
			if typed == "" {
				continue
			}
		case []any:
			if len(typed) == 0 {
				continue
			}
		case []string:
			if len(typed) == 0 {
				continue
			}
		}
		cleaned[key] = value
	}
	return cleaned
}
