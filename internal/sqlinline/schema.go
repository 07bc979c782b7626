package sqlinline

// QCreateSchema creates the projects and donations tables. Donations carry no
// foreign key so that a donation for an unknown project is still recorded.
const QCreateSchema = `--sql 296cc96f-a875-42a7-a121-069d51b451c0
create table if not exists projects (
  id text primary key,
  title text not null,
  location_type text not null check (location_type in ('Village', 'Slum')),
  description text not null default '',
  goal_amount numeric(14, 2) not null check (goal_amount >= 0),
  raised_amount numeric(14, 2) not null default 0,
  status text not null default 'In-Progress' check (status in ('In-Progress', 'Completed')),
  image_url text,
  created_at timestamptz not null default now(),
  updated_at timestamptz not null default now()
);

create table if not exists donations (
  id text primary key,
  amount numeric(14, 2) not null,
  donor_name text not null,
  campaign_id text,
  project_id text not null,
  is_recurring boolean not null default false,
  created_at timestamptz not null default now()
);

create index if not exists donations_project_created_idx on donations (project_id, created_at desc);
`

const QDropSchema = `--sql b740ff84-8ef0-48c8-a7e3-8412258eb458
drop table if exists donations;
drop table if exists projects;
`
