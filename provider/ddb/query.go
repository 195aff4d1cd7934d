/*
 * Copyright © 2025 Yardimhane Bilisim, All rights reserved.
 */

package ddb

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/yardimhane/casestore/errors"
	"github.com/yardimhane/casestore/storagemodels"
)

// SearchField is the record field the search term is matched against.
// The match is a substring check; unlike the Mongo provider it is
// case-sensitive, which is what contains() gives us.
const SearchField = "name"

// ScanQuery is the provider-native form of a normalized query: a conjunctive
// filter expression plus its attribute name/value placeholder maps.
type ScanQuery struct {
	FilterExpression          string
	ExpressionAttributeNames  map[string]string
	ExpressionAttributeValues map[string]types.AttributeValue
}

// BuildScanQuery translates normalized query parameters into a DynamoDB
// filter expression. The EntityType clause is always present so a scan never
// crosses collection boundaries in the shared table; each equality filter
// and the search term add one clause. Filters are emitted in sorted field
// order so the expression is deterministic.
func BuildScanQuery(entityType string, params *storagemodels.QueryParams) (*ScanQuery, error) {
	clauses := []string{"#et = :et"}
	names := map[string]string{"#et": attrEntityType}
	values := map[string]types.AttributeValue{
		":et": &types.AttributeValueMemberS{Value: entityType},
	}

	if params != nil {
		fields := make([]string, 0, len(params.Filters))
		for field := range params.Filters {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		for i, field := range fields {
			namePlaceholder := fmt.Sprintf("#f%d", i)
			valuePlaceholder := fmt.Sprintf(":v%d", i)

			av, err := attributevalue.Marshal(params.Filters[field])
			if err != nil {
				return nil, fmt.Errorf("failed to marshal filter value for field %q: %w", field, err)
			}

			clauses = append(clauses, fmt.Sprintf("%s = %s", namePlaceholder, valuePlaceholder))
			names[namePlaceholder] = field
			values[valuePlaceholder] = av
		}

		if params.Search != "" {
			clauses = append(clauses, "contains(#search, :search)")
			names["#search"] = SearchField
			values[":search"] = &types.AttributeValueMemberS{Value: params.Search}
		}
	}

	return &ScanQuery{
		FilterExpression:          strings.Join(clauses, " AND "),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}, nil
}

// buildUpdateExpression transforms a partial patch into:
//   - an update expression (e.g., "SET #f0 = :v0, #f1 = :v1")
//   - a corresponding map of expression attribute names
//   - a corresponding map of expression attribute values
//
// The id and key attributes are never part of the patch.
func buildUpdateExpression(patch storagemodels.Record) (string,
	map[string]string,
	map[string]types.AttributeValue,
	error) {

	fields := make([]string, 0, len(patch))
	for field := range patch {
		if field == "id" || field == attrPK || field == attrSK || field == attrEntityType {
			continue
		}
		fields = append(fields, field)
	}
	if len(fields) == 0 {
		return "", nil, nil, errors.NewValidationError("", "empty patch")
	}
	sort.Strings(fields)

	setClauses := make([]string, 0, len(fields))
	exprAttrNames := make(map[string]string, len(fields))
	exprAttrValues := make(map[string]types.AttributeValue, len(fields))

	for i, field := range fields {
		namePlaceholder := fmt.Sprintf("#f%d", i)
		valuePlaceholder := fmt.Sprintf(":v%d", i)

		av, err := attributevalue.Marshal(patch[field])
		if err != nil {
			return "", nil, nil, fmt.Errorf("failed to marshal update value for field %q: %w", field, err)
		}

		setClauses = append(setClauses, fmt.Sprintf("%s = %s", namePlaceholder, valuePlaceholder))
		exprAttrNames[namePlaceholder] = field
		exprAttrValues[valuePlaceholder] = av
	}

	return "SET " + strings.Join(setClauses, ", "), exprAttrNames, exprAttrValues, nil
}
