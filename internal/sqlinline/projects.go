package sqlinline

const QListProjects = `--sql e3eacc2d-ab53-4216-8195-ea3570f8d92a
select id, title, location_type, description, goal_amount::float8, raised_amount::float8, status, image_url, created_at, updated_at
from projects
order by created_at desc;
`

const QGetProject = `--sql fafde11a-2167-4503-b7d6-4d4f79c997f3
select id, title, location_type, description, goal_amount::float8, raised_amount::float8, status, image_url, created_at, updated_at
from projects
where id = $1::text;
`

const QCreditProject = `--sql 2bb690c2-aef4-4312-86a5-5aab102e662c
update projects
set raised_amount = raised_amount + $2::numeric
where id = $1::text;
`

const QUpsertProject = `--sql 09bf6c38-0e54-44f3-b453-f6a83ad5e2e2
insert into projects(id, title, location_type, description, goal_amount, raised_amount, status, image_url, created_at, updated_at)
values ($1::text, $2::text, $3::text, $4::text, $5::numeric, $6::numeric, $7::text, $8::text, $9::timestamptz, $10::timestamptz)
on conflict (id) do nothing;
`
