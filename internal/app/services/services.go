package services

// Services defined in this package:
// - FilterService: resolves campus > school > department filter options
// - InstructorService: derives per-instructor rating statistics
// - RatingService: rating ledger (create/update/delete/list) and
//   candidate instructor resolution
