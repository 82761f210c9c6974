// Package diagnostic provides the structured errors and the non-fatal
// diagnostics collection shared by the schema converters and the record decoder.
//
// Errors carry a closed Kind plus the structured detail of the failure:
//
//	var derr *diagnostic.Error
//	if errors.As(err, &derr) && derr.Kind == diagnostic.KindUnionResolution {
//		fmt.Println(derr.Path, derr.Attempted)
//	}
//
// Sentinels such as ErrUnionResolution match any error of the same kind:
//
//	errors.Is(err, diagnostic.ErrUnionResolution)
//
// Diagnostics collects findings that should be reported together instead of
// aborting on the first one, such as every unknown type name in a tabular schema.
package diagnostic
