package sqlinline

const QGlobalMetrics = `--sql 2c01b139-cdad-4979-879b-a224674b7e8e
select
  count(*)::int as total_projects,
  count(*) filter (where location_type = 'Village')::int as total_villages,
  coalesce(sum(raised_amount), 0)::float8 as total_raised
from projects;
`
